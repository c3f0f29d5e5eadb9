package types

import (
	"encoding/json"
	"strconv"
	"time"

	"ocpp16/validation"
)

type ChargingProfilePurposeType string
type ChargingProfileKindType string
type RecurrencyKindType string
type ChargingRateUnitType string

const (
	ChargingProfilePurposeChargePointMaxProfile ChargingProfilePurposeType = "ChargePointMaxProfile"
	ChargingProfilePurposeTxDefaultProfile      ChargingProfilePurposeType = "TxDefaultProfile"
	ChargingProfilePurposeTxProfile             ChargingProfilePurposeType = "TxProfile"
	ChargingProfileKindAbsolute                 ChargingProfileKindType    = "Absolute"
	ChargingProfileKindRecurring                ChargingProfileKindType    = "Recurring"
	ChargingProfileKindRelative                 ChargingProfileKindType    = "Relative"
	RecurrencyKindDaily                         RecurrencyKindType         = "Daily"
	RecurrencyKindWeekly                        RecurrencyKindType         = "Weekly"
	ChargingRateUnitWatts                       ChargingRateUnitType       = "W"
	ChargingRateUnitAmperes                     ChargingRateUnitType       = "A"
)

func init() {
	validation.RegisterEnum("chargingProfilePurpose",
		string(ChargingProfilePurposeChargePointMaxProfile),
		string(ChargingProfilePurposeTxDefaultProfile),
		string(ChargingProfilePurposeTxProfile))
	validation.RegisterEnum("chargingProfileKind",
		string(ChargingProfileKindAbsolute), string(ChargingProfileKindRecurring), string(ChargingProfileKindRelative))
	validation.RegisterEnum("recurrencyKind", string(RecurrencyKindDaily), string(RecurrencyKindWeekly))
	validation.RegisterEnum("chargingRateUnit", string(ChargingRateUnitWatts), string(ChargingRateUnitAmperes))
}

// ChargingSchedulePeriod limits the charging rate from StartPeriod seconds after the schedule start.
type ChargingSchedulePeriod struct {
	startPeriod  *int
	limit        *float64
	numberPhases *int
}

type chargingSchedulePeriodJSON struct {
	StartPeriod  *int     `json:"startPeriod,omitempty"`
	Limit        *float64 `json:"limit,omitempty"`
	NumberPhases *int     `json:"numberPhases,omitempty"`
}

func NewChargingSchedulePeriod(startPeriod int, limit float64) (*ChargingSchedulePeriod, error) {
	period := &ChargingSchedulePeriod{}
	if err := period.SetStartPeriod(startPeriod); err != nil {
		return nil, err
	}
	if err := period.SetLimit(limit); err != nil {
		return nil, err
	}
	return period, nil
}

func (p *ChargingSchedulePeriod) StartPeriod() int {
	if p.startPeriod == nil {
		return 0
	}
	return *p.startPeriod
}

func (p *ChargingSchedulePeriod) SetStartPeriod(startPeriod int) error {
	if err := validation.Check("startPeriod", startPeriod, "gte=0"); err != nil {
		return err
	}
	p.startPeriod = &startPeriod
	return nil
}

func (p *ChargingSchedulePeriod) Limit() float64 {
	if p.limit == nil {
		return 0
	}
	return *p.limit
}

func (p *ChargingSchedulePeriod) SetLimit(limit float64) error {
	if err := validation.Check("limit", limit, "gte=0"); err != nil {
		return err
	}
	p.limit = &limit
	return nil
}

func (p *ChargingSchedulePeriod) NumberPhases() *int {
	return p.numberPhases
}

func (p *ChargingSchedulePeriod) SetNumberPhases(numberPhases int) error {
	if err := validation.Check("numberPhases", numberPhases, "min=1,max=3"); err != nil {
		return err
	}
	p.numberPhases = &numberPhases
	return nil
}

func (p *ChargingSchedulePeriod) Violations() validation.Errors {
	var c validation.Collector
	c.Require("startPeriod", p.startPeriod != nil)
	c.Require("limit", p.limit != nil)
	return c.Result()
}

func (p *ChargingSchedulePeriod) Validate() bool {
	return validation.Valid(p)
}

func (p ChargingSchedulePeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(chargingSchedulePeriodJSON{StartPeriod: p.startPeriod, Limit: p.limit, NumberPhases: p.numberPhases})
}

func (p *ChargingSchedulePeriod) UnmarshalJSON(data []byte) error {
	var raw chargingSchedulePeriodJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	var period ChargingSchedulePeriod
	if raw.StartPeriod != nil {
		if err := period.SetStartPeriod(*raw.StartPeriod); err != nil {
			return err
		}
	}
	if raw.Limit != nil {
		if err := period.SetLimit(*raw.Limit); err != nil {
			return err
		}
	}
	if raw.NumberPhases != nil {
		if err := period.SetNumberPhases(*raw.NumberPhases); err != nil {
			return err
		}
	}
	*p = period
	return nil
}

// ChargingSchedule is a list of charging periods sharing a rate unit.
type ChargingSchedule struct {
	duration               *int
	startSchedule          *DateTime
	chargingRateUnit       ChargingRateUnitType
	chargingSchedulePeriod []*ChargingSchedulePeriod
	minChargingRate        *float64
}

type chargingScheduleJSON struct {
	Duration               *int                      `json:"duration,omitempty"`
	StartSchedule          *DateTime                 `json:"startSchedule,omitempty"`
	ChargingRateUnit       ChargingRateUnitType      `json:"chargingRateUnit,omitempty"`
	ChargingSchedulePeriod []*ChargingSchedulePeriod `json:"chargingSchedulePeriod,omitempty"`
	MinChargingRate        *float64                  `json:"minChargingRate,omitempty"`
}

func NewChargingSchedule(chargingRateUnit ChargingRateUnitType, periods ...*ChargingSchedulePeriod) (*ChargingSchedule, error) {
	schedule := &ChargingSchedule{}
	if err := schedule.SetChargingRateUnit(chargingRateUnit); err != nil {
		return nil, err
	}
	if err := schedule.SetChargingSchedulePeriod(periods); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ChargingSchedule) Duration() *int {
	return s.duration
}

func (s *ChargingSchedule) SetDuration(duration int) error {
	if err := validation.Check("duration", duration, "gte=0"); err != nil {
		return err
	}
	s.duration = &duration
	return nil
}

func (s *ChargingSchedule) StartSchedule() *DateTime {
	return s.startSchedule
}

func (s *ChargingSchedule) SetStartSchedule(startSchedule time.Time) {
	s.startSchedule = NewDateTime(startSchedule)
}

func (s *ChargingSchedule) ChargingRateUnit() ChargingRateUnitType {
	return s.chargingRateUnit
}

func (s *ChargingSchedule) SetChargingRateUnit(chargingRateUnit ChargingRateUnitType) error {
	if err := validation.Check("chargingRateUnit", chargingRateUnit, "chargingRateUnit"); err != nil {
		return err
	}
	s.chargingRateUnit = chargingRateUnit
	return nil
}

func (s *ChargingSchedule) ChargingSchedulePeriod() []*ChargingSchedulePeriod {
	return s.chargingSchedulePeriod
}

func (s *ChargingSchedule) SetChargingSchedulePeriod(periods []*ChargingSchedulePeriod) error {
	if err := validation.Check("chargingSchedulePeriod", periods, "min=1"); err != nil {
		return err
	}
	s.chargingSchedulePeriod = periods
	return nil
}

func (s *ChargingSchedule) MinChargingRate() *float64 {
	return s.minChargingRate
}

func (s *ChargingSchedule) SetMinChargingRate(minChargingRate float64) error {
	if err := validation.Check("minChargingRate", minChargingRate, "gte=0"); err != nil {
		return err
	}
	s.minChargingRate = &minChargingRate
	return nil
}

func (s *ChargingSchedule) Violations() validation.Errors {
	var c validation.Collector
	c.Require("chargingRateUnit", s.chargingRateUnit != "")
	c.Require("chargingSchedulePeriod", len(s.chargingSchedulePeriod) > 0)
	c.Optional("startSchedule", s.startSchedule)
	validation.Each(&c, "chargingSchedulePeriod", s.chargingSchedulePeriod)
	// periods start at 0 and are strictly ascending
	previous := -1
	for i, period := range s.chargingSchedulePeriod {
		if period == nil || period.startPeriod == nil {
			continue
		}
		start := *period.startPeriod
		if i == 0 {
			c.Rule("chargingSchedulePeriod[0].startPeriod", start == 0, start, "eq=0")
		} else {
			c.Rule(fieldIndex("chargingSchedulePeriod", i, "startPeriod"), start > previous, start, "ascending")
		}
		previous = start
	}
	return c.Result()
}

func (s *ChargingSchedule) Validate() bool {
	return validation.Valid(s)
}

func (s ChargingSchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(chargingScheduleJSON{
		Duration:               s.duration,
		StartSchedule:          s.startSchedule,
		ChargingRateUnit:       s.chargingRateUnit,
		ChargingSchedulePeriod: s.chargingSchedulePeriod,
		MinChargingRate:        s.minChargingRate,
	})
}

func (s *ChargingSchedule) UnmarshalJSON(data []byte) error {
	var raw chargingScheduleJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	schedule := ChargingSchedule{startSchedule: raw.StartSchedule}
	if raw.Duration != nil {
		if err := schedule.SetDuration(*raw.Duration); err != nil {
			return err
		}
	}
	if raw.ChargingRateUnit != "" {
		if err := schedule.SetChargingRateUnit(raw.ChargingRateUnit); err != nil {
			return err
		}
	}
	if raw.ChargingSchedulePeriod != nil {
		if err := schedule.SetChargingSchedulePeriod(raw.ChargingSchedulePeriod); err != nil {
			return err
		}
	}
	if raw.MinChargingRate != nil {
		if err := schedule.SetMinChargingRate(*raw.MinChargingRate); err != nil {
			return err
		}
	}
	*s = schedule
	return nil
}

// ChargingProfile is a charging schedule together with its scope and validity.
type ChargingProfile struct {
	chargingProfileId      *int
	transactionId          *int
	stackLevel             *int
	chargingProfilePurpose ChargingProfilePurposeType
	chargingProfileKind    ChargingProfileKindType
	recurrencyKind         RecurrencyKindType
	validFrom              *DateTime
	validTo                *DateTime
	chargingSchedule       *ChargingSchedule
}

type chargingProfileJSON struct {
	ChargingProfileId      *int                       `json:"chargingProfileId,omitempty"`
	TransactionId          *int                       `json:"transactionId,omitempty"`
	StackLevel             *int                       `json:"stackLevel,omitempty"`
	ChargingProfilePurpose ChargingProfilePurposeType `json:"chargingProfilePurpose,omitempty"`
	ChargingProfileKind    ChargingProfileKindType    `json:"chargingProfileKind,omitempty"`
	RecurrencyKind         RecurrencyKindType         `json:"recurrencyKind,omitempty"`
	ValidFrom              *DateTime                  `json:"validFrom,omitempty"`
	ValidTo                *DateTime                  `json:"validTo,omitempty"`
	ChargingSchedule       *ChargingSchedule          `json:"chargingSchedule,omitempty"`
}

func NewChargingProfile(chargingProfileId int, stackLevel int, purpose ChargingProfilePurposeType, kind ChargingProfileKindType, schedule *ChargingSchedule) (*ChargingProfile, error) {
	profile := &ChargingProfile{chargingProfileId: &chargingProfileId, chargingSchedule: schedule}
	if err := profile.SetStackLevel(stackLevel); err != nil {
		return nil, err
	}
	if err := profile.SetChargingProfilePurpose(purpose); err != nil {
		return nil, err
	}
	if err := profile.SetChargingProfileKind(kind); err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *ChargingProfile) ChargingProfileId() int {
	if p.chargingProfileId == nil {
		return 0
	}
	return *p.chargingProfileId
}

func (p *ChargingProfile) SetChargingProfileId(chargingProfileId int) {
	p.chargingProfileId = &chargingProfileId
}

func (p *ChargingProfile) TransactionId() *int {
	return p.transactionId
}

func (p *ChargingProfile) SetTransactionId(transactionId int) {
	p.transactionId = &transactionId
}

func (p *ChargingProfile) StackLevel() int {
	if p.stackLevel == nil {
		return 0
	}
	return *p.stackLevel
}

func (p *ChargingProfile) SetStackLevel(stackLevel int) error {
	if err := validation.Check("stackLevel", stackLevel, "gte=0"); err != nil {
		return err
	}
	p.stackLevel = &stackLevel
	return nil
}

func (p *ChargingProfile) ChargingProfilePurpose() ChargingProfilePurposeType {
	return p.chargingProfilePurpose
}

func (p *ChargingProfile) SetChargingProfilePurpose(purpose ChargingProfilePurposeType) error {
	if err := validation.Check("chargingProfilePurpose", purpose, "chargingProfilePurpose"); err != nil {
		return err
	}
	p.chargingProfilePurpose = purpose
	return nil
}

func (p *ChargingProfile) ChargingProfileKind() ChargingProfileKindType {
	return p.chargingProfileKind
}

func (p *ChargingProfile) SetChargingProfileKind(kind ChargingProfileKindType) error {
	if err := validation.Check("chargingProfileKind", kind, "chargingProfileKind"); err != nil {
		return err
	}
	p.chargingProfileKind = kind
	return nil
}

func (p *ChargingProfile) RecurrencyKind() RecurrencyKindType {
	return p.recurrencyKind
}

func (p *ChargingProfile) SetRecurrencyKind(kind RecurrencyKindType) error {
	if err := validation.Check("recurrencyKind", kind, "recurrencyKind"); err != nil {
		return err
	}
	p.recurrencyKind = kind
	return nil
}

func (p *ChargingProfile) ValidFrom() *DateTime {
	return p.validFrom
}

func (p *ChargingProfile) SetValidFrom(validFrom time.Time) {
	p.validFrom = NewDateTime(validFrom)
}

func (p *ChargingProfile) ValidTo() *DateTime {
	return p.validTo
}

func (p *ChargingProfile) SetValidTo(validTo time.Time) {
	p.validTo = NewDateTime(validTo)
}

func (p *ChargingProfile) ChargingSchedule() *ChargingSchedule {
	return p.chargingSchedule
}

func (p *ChargingProfile) SetChargingSchedule(schedule *ChargingSchedule) {
	p.chargingSchedule = schedule
}

func (p *ChargingProfile) Violations() validation.Errors {
	var c validation.Collector
	c.Require("chargingProfileId", p.chargingProfileId != nil)
	c.Require("stackLevel", p.stackLevel != nil)
	c.Require("chargingProfilePurpose", p.chargingProfilePurpose != "")
	c.Require("chargingProfileKind", p.chargingProfileKind != "")
	c.Nested("chargingSchedule", p.chargingSchedule)
	c.Optional("validFrom", p.validFrom)
	c.Optional("validTo", p.validTo)
	if p.chargingProfileKind == ChargingProfileKindRecurring {
		c.Rule("recurrencyKind", p.recurrencyKind != "", nil, "required_if=chargingProfileKind Recurring")
	} else if p.recurrencyKind != "" {
		c.Rule("recurrencyKind", false, p.recurrencyKind, "excluded_unless=chargingProfileKind Recurring")
	}
	if p.transactionId != nil {
		c.Rule("transactionId", p.chargingProfilePurpose == ChargingProfilePurposeTxProfile, *p.transactionId, "excluded_unless=chargingProfilePurpose TxProfile")
	}
	if p.validFrom.IsSet() && p.validTo.IsSet() {
		c.Rule("validTo", p.validTo.After(p.validFrom.Time), p.validTo.String(), "gtfield=validFrom")
	}
	return c.Result()
}

func (p *ChargingProfile) Validate() bool {
	return validation.Valid(p)
}

func (p ChargingProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(chargingProfileJSON{
		ChargingProfileId:      p.chargingProfileId,
		TransactionId:          p.transactionId,
		StackLevel:             p.stackLevel,
		ChargingProfilePurpose: p.chargingProfilePurpose,
		ChargingProfileKind:    p.chargingProfileKind,
		RecurrencyKind:         p.recurrencyKind,
		ValidFrom:              p.validFrom,
		ValidTo:                p.validTo,
		ChargingSchedule:       p.chargingSchedule,
	})
}

func (p *ChargingProfile) UnmarshalJSON(data []byte) error {
	var raw chargingProfileJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	profile := ChargingProfile{
		chargingProfileId: raw.ChargingProfileId,
		transactionId:     raw.TransactionId,
		validFrom:         raw.ValidFrom,
		validTo:           raw.ValidTo,
		chargingSchedule:  raw.ChargingSchedule,
	}
	if raw.StackLevel != nil {
		if err := profile.SetStackLevel(*raw.StackLevel); err != nil {
			return err
		}
	}
	if raw.ChargingProfilePurpose != "" {
		if err := profile.SetChargingProfilePurpose(raw.ChargingProfilePurpose); err != nil {
			return err
		}
	}
	if raw.ChargingProfileKind != "" {
		if err := profile.SetChargingProfileKind(raw.ChargingProfileKind); err != nil {
			return err
		}
	}
	if raw.RecurrencyKind != "" {
		if err := profile.SetRecurrencyKind(raw.RecurrencyKind); err != nil {
			return err
		}
	}
	*p = profile
	return nil
}

func fieldIndex(field string, i int, nested string) string {
	return field + "[" + strconv.Itoa(i) + "]." + nested
}
