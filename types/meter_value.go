package types

import (
	"encoding/json"
	"time"

	"ocpp16/validation"
)

type ReadingContext string
type ValueFormat string
type Measurand string
type Phase string
type Location string
type UnitOfMeasure string

const (
	ReadingContextInterruptionBegin       ReadingContext = "Interruption.Begin"
	ReadingContextInterruptionEnd         ReadingContext = "Interruption.End"
	ReadingContextOther                   ReadingContext = "Other"
	ReadingContextSampleClock             ReadingContext = "Sample.Clock"
	ReadingContextSamplePeriodic          ReadingContext = "Sample.Periodic"
	ReadingContextTransactionBegin        ReadingContext = "Transaction.Begin"
	ReadingContextTransactionEnd          ReadingContext = "Transaction.End"
	ReadingContextTrigger                 ReadingContext = "Trigger"
	ValueFormatRaw                        ValueFormat    = "Raw"
	ValueFormatSignedData                 ValueFormat    = "SignedData"
	MeasurandCurrentExport                Measurand      = "Current.Export"
	MeasurandCurrentImport                Measurand      = "Current.Import"
	MeasurandCurrentOffered               Measurand      = "Current.Offered"
	MeasurandEnergyActiveExportRegister   Measurand      = "Energy.Active.Export.Register"
	MeasurandEnergyActiveImportRegister   Measurand      = "Energy.Active.Import.Register"
	MeasurandEnergyReactiveExportRegister Measurand      = "Energy.Reactive.Export.Register"
	MeasurandEnergyReactiveImportRegister Measurand      = "Energy.Reactive.Import.Register"
	MeasurandEnergyActiveExportInterval   Measurand      = "Energy.Active.Export.Interval"
	MeasurandEnergyActiveImportInterval   Measurand      = "Energy.Active.Import.Interval"
	MeasurandEnergyReactiveExportInterval Measurand      = "Energy.Reactive.Export.Interval"
	MeasurandEnergyReactiveImportInterval Measurand      = "Energy.Reactive.Import.Interval"
	MeasurandFrequency                    Measurand      = "Frequency"
	MeasurandPowerActiveExport            Measurand      = "Power.Active.Export"
	MeasurandPowerActiveImport            Measurand      = "Power.Active.Import"
	MeasurandPowerFactor                  Measurand      = "Power.Factor"
	MeasurandPowerOffered                 Measurand      = "Power.Offered"
	MeasurandPowerReactiveExport          Measurand      = "Power.Reactive.Export"
	MeasurandPowerReactiveImport          Measurand      = "Power.Reactive.Import"
	MeasurandRPM                          Measurand      = "RPM"
	MeasurandSoC                          Measurand      = "SoC"
	MeasurandTemperature                  Measurand      = "Temperature"
	MeasurandVoltage                      Measurand      = "Voltage"
	PhaseL1                               Phase          = "L1"
	PhaseL2                               Phase          = "L2"
	PhaseL3                               Phase          = "L3"
	PhaseN                                Phase          = "N"
	PhaseL1N                              Phase          = "L1-N"
	PhaseL2N                              Phase          = "L2-N"
	PhaseL3N                              Phase          = "L3-N"
	PhaseL1L2                             Phase          = "L1-L2"
	PhaseL2L3                             Phase          = "L2-L3"
	PhaseL3L1                             Phase          = "L3-L1"
	LocationBody                          Location       = "Body"
	LocationCable                         Location       = "Cable"
	LocationEV                            Location       = "EV"
	LocationInlet                         Location       = "Inlet"
	LocationOutlet                        Location       = "Outlet"
	UnitOfMeasureWh                       UnitOfMeasure  = "Wh"
	UnitOfMeasureKWh                      UnitOfMeasure  = "kWh"
	UnitOfMeasureVarh                     UnitOfMeasure  = "varh"
	UnitOfMeasureKvarh                    UnitOfMeasure  = "kvarh"
	UnitOfMeasureW                        UnitOfMeasure  = "W"
	UnitOfMeasureKW                       UnitOfMeasure  = "kW"
	UnitOfMeasureVA                       UnitOfMeasure  = "VA"
	UnitOfMeasureKVA                      UnitOfMeasure  = "kVA"
	UnitOfMeasureVar                      UnitOfMeasure  = "var"
	UnitOfMeasureKvar                     UnitOfMeasure  = "kvar"
	UnitOfMeasureA                        UnitOfMeasure  = "A"
	UnitOfMeasureV                        UnitOfMeasure  = "V"
	UnitOfMeasureCelsius                  UnitOfMeasure  = "Celsius"
	UnitOfMeasureFahrenheit               UnitOfMeasure  = "Fahrenheit"
	UnitOfMeasureK                        UnitOfMeasure  = "K"
	UnitOfMeasurePercent                  UnitOfMeasure  = "Percent"
)

func init() {
	validation.RegisterEnum("readingContext",
		string(ReadingContextInterruptionBegin), string(ReadingContextInterruptionEnd),
		string(ReadingContextOther), string(ReadingContextSampleClock),
		string(ReadingContextSamplePeriodic), string(ReadingContextTransactionBegin),
		string(ReadingContextTransactionEnd), string(ReadingContextTrigger))
	validation.RegisterEnum("valueFormat", string(ValueFormatRaw), string(ValueFormatSignedData))
	validation.RegisterEnum("measurand",
		string(MeasurandCurrentExport), string(MeasurandCurrentImport), string(MeasurandCurrentOffered),
		string(MeasurandEnergyActiveExportRegister), string(MeasurandEnergyActiveImportRegister),
		string(MeasurandEnergyReactiveExportRegister), string(MeasurandEnergyReactiveImportRegister),
		string(MeasurandEnergyActiveExportInterval), string(MeasurandEnergyActiveImportInterval),
		string(MeasurandEnergyReactiveExportInterval), string(MeasurandEnergyReactiveImportInterval),
		string(MeasurandFrequency), string(MeasurandPowerActiveExport), string(MeasurandPowerActiveImport),
		string(MeasurandPowerFactor), string(MeasurandPowerOffered), string(MeasurandPowerReactiveExport),
		string(MeasurandPowerReactiveImport), string(MeasurandRPM), string(MeasurandSoC),
		string(MeasurandTemperature), string(MeasurandVoltage))
	validation.RegisterEnum("phase",
		string(PhaseL1), string(PhaseL2), string(PhaseL3), string(PhaseN),
		string(PhaseL1N), string(PhaseL2N), string(PhaseL3N),
		string(PhaseL1L2), string(PhaseL2L3), string(PhaseL3L1))
	validation.RegisterEnum("location",
		string(LocationBody), string(LocationCable), string(LocationEV), string(LocationInlet), string(LocationOutlet))
	validation.RegisterEnum("unitOfMeasure",
		string(UnitOfMeasureWh), string(UnitOfMeasureKWh), string(UnitOfMeasureVarh), string(UnitOfMeasureKvarh),
		string(UnitOfMeasureW), string(UnitOfMeasureKW), string(UnitOfMeasureVA), string(UnitOfMeasureKVA),
		string(UnitOfMeasureVar), string(UnitOfMeasureKvar), string(UnitOfMeasureA), string(UnitOfMeasureV),
		string(UnitOfMeasureCelsius), string(UnitOfMeasureFahrenheit), string(UnitOfMeasureK),
		string(UnitOfMeasurePercent))
}

// SampledValue is a single measured value within a MeterValue. Only the value itself is required.
type SampledValue struct {
	value     string
	context   ReadingContext
	format    ValueFormat
	measurand Measurand
	phase     Phase
	location  Location
	unit      UnitOfMeasure
}

type sampledValueJSON struct {
	Value     string         `json:"value,omitempty"`
	Context   ReadingContext `json:"context,omitempty"`
	Format    ValueFormat    `json:"format,omitempty"`
	Measurand Measurand      `json:"measurand,omitempty"`
	Phase     Phase          `json:"phase,omitempty"`
	Location  Location       `json:"location,omitempty"`
	Unit      UnitOfMeasure  `json:"unit,omitempty"`
}

func NewSampledValue(value string) *SampledValue {
	return &SampledValue{value: value}
}

func (s *SampledValue) Value() string           { return s.value }
func (s *SampledValue) Context() ReadingContext { return s.context }
func (s *SampledValue) Format() ValueFormat     { return s.format }
func (s *SampledValue) Measurand() Measurand    { return s.measurand }
func (s *SampledValue) Phase() Phase            { return s.phase }
func (s *SampledValue) Location() Location      { return s.location }
func (s *SampledValue) Unit() UnitOfMeasure     { return s.unit }
func (s *SampledValue) SetValue(value string)   { s.value = value }

func (s *SampledValue) SetContext(context ReadingContext) error {
	if err := validation.Check("context", context, "readingContext"); err != nil {
		return err
	}
	s.context = context
	return nil
}

func (s *SampledValue) SetFormat(format ValueFormat) error {
	if err := validation.Check("format", format, "valueFormat"); err != nil {
		return err
	}
	s.format = format
	return nil
}

func (s *SampledValue) SetMeasurand(measurand Measurand) error {
	if err := validation.Check("measurand", measurand, "measurand"); err != nil {
		return err
	}
	s.measurand = measurand
	return nil
}

func (s *SampledValue) SetPhase(phase Phase) error {
	if err := validation.Check("phase", phase, "phase"); err != nil {
		return err
	}
	s.phase = phase
	return nil
}

func (s *SampledValue) SetLocation(location Location) error {
	if err := validation.Check("location", location, "location"); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *SampledValue) SetUnit(unit UnitOfMeasure) error {
	if err := validation.Check("unit", unit, "unitOfMeasure"); err != nil {
		return err
	}
	s.unit = unit
	return nil
}

func (s *SampledValue) Violations() validation.Errors {
	var c validation.Collector
	c.Require("value", s.value != "")
	return c.Result()
}

func (s *SampledValue) Validate() bool {
	return validation.Valid(s)
}

func (s SampledValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(sampledValueJSON{
		Value:     s.value,
		Context:   s.context,
		Format:    s.format,
		Measurand: s.measurand,
		Phase:     s.phase,
		Location:  s.location,
		Unit:      s.unit,
	})
}

func (s *SampledValue) UnmarshalJSON(data []byte) error {
	var raw sampledValueJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	value := SampledValue{value: raw.Value}
	if raw.Context != "" {
		if err := value.SetContext(raw.Context); err != nil {
			return err
		}
	}
	if raw.Format != "" {
		if err := value.SetFormat(raw.Format); err != nil {
			return err
		}
	}
	if raw.Measurand != "" {
		if err := value.SetMeasurand(raw.Measurand); err != nil {
			return err
		}
	}
	if raw.Phase != "" {
		if err := value.SetPhase(raw.Phase); err != nil {
			return err
		}
	}
	if raw.Location != "" {
		if err := value.SetLocation(raw.Location); err != nil {
			return err
		}
	}
	if raw.Unit != "" {
		if err := value.SetUnit(raw.Unit); err != nil {
			return err
		}
	}
	*s = value
	return nil
}

// MeterValue is a collection of sampled values taken at the same point in time.
type MeterValue struct {
	timestamp    *DateTime
	sampledValue []*SampledValue
}

type meterValueJSON struct {
	Timestamp    *DateTime       `json:"timestamp,omitempty"`
	SampledValue []*SampledValue `json:"sampledValue,omitempty"`
}

func NewMeterValue(timestamp time.Time, sampledValue ...*SampledValue) (*MeterValue, error) {
	mv := &MeterValue{timestamp: NewDateTime(timestamp)}
	if err := mv.SetSampledValue(sampledValue); err != nil {
		return nil, err
	}
	return mv, nil
}

func (m *MeterValue) Timestamp() *DateTime {
	return m.timestamp
}

func (m *MeterValue) SetTimestamp(timestamp time.Time) {
	m.timestamp = NewDateTime(timestamp)
}

func (m *MeterValue) SampledValue() []*SampledValue {
	return m.sampledValue
}

func (m *MeterValue) SetSampledValue(sampledValue []*SampledValue) error {
	if err := validation.Check("sampledValue", sampledValue, "min=1"); err != nil {
		return err
	}
	m.sampledValue = sampledValue
	return nil
}

func (m *MeterValue) Violations() validation.Errors {
	var c validation.Collector
	c.Require("timestamp", m.timestamp.IsSet())
	c.Optional("timestamp", m.timestamp)
	c.Require("sampledValue", len(m.sampledValue) > 0)
	validation.Each(&c, "sampledValue", m.sampledValue)
	return c.Result()
}

func (m *MeterValue) Validate() bool {
	return validation.Valid(m)
}

func (m MeterValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(meterValueJSON{Timestamp: m.timestamp, SampledValue: m.sampledValue})
}

func (m *MeterValue) UnmarshalJSON(data []byte) error {
	var raw meterValueJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	mv := MeterValue{timestamp: raw.Timestamp}
	if raw.SampledValue != nil {
		if err := mv.SetSampledValue(raw.SampledValue); err != nil {
			return err
		}
	}
	*m = mv
	return nil
}
