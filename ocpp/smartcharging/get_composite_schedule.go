package smartcharging

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const GetCompositeScheduleFeatureName = "GetCompositeSchedule"

type GetCompositeScheduleStatus string

const (
	GetCompositeScheduleStatusAccepted GetCompositeScheduleStatus = "Accepted"
	GetCompositeScheduleStatusRejected GetCompositeScheduleStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("getCompositeScheduleStatus",
		string(GetCompositeScheduleStatusAccepted),
		string(GetCompositeScheduleStatusRejected))
}

type GetCompositeScheduleRequest struct {
	connectorId      *int
	duration         *int
	chargingRateUnit types.ChargingRateUnitType
}

type getCompositeScheduleRequestJSON struct {
	ConnectorId      *int                       `json:"connectorId,omitempty"`
	Duration         *int                       `json:"duration,omitempty"`
	ChargingRateUnit types.ChargingRateUnitType `json:"chargingRateUnit,omitempty"`
}

func NewGetCompositeScheduleRequest(connectorId int, duration int) (*GetCompositeScheduleRequest, error) {
	request := &GetCompositeScheduleRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	if err := request.SetDuration(duration); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *GetCompositeScheduleRequest) GetFeatureName() string {
	return GetCompositeScheduleFeatureName
}

func (r *GetCompositeScheduleRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *GetCompositeScheduleRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

// Duration is the length of the requested schedule in seconds.
func (r *GetCompositeScheduleRequest) Duration() int {
	if r.duration == nil {
		return 0
	}
	return *r.duration
}

func (r *GetCompositeScheduleRequest) SetDuration(duration int) error {
	if err := validation.Check("duration", duration, "gte=0"); err != nil {
		return err
	}
	r.duration = &duration
	return nil
}

func (r *GetCompositeScheduleRequest) ChargingRateUnit() types.ChargingRateUnitType {
	return r.chargingRateUnit
}

func (r *GetCompositeScheduleRequest) SetChargingRateUnit(unit types.ChargingRateUnitType) error {
	if err := validation.Check("chargingRateUnit", unit, "chargingRateUnit"); err != nil {
		return err
	}
	r.chargingRateUnit = unit
	return nil
}

func (r *GetCompositeScheduleRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Require("duration", r.duration != nil)
	return c.Result()
}

func (r *GetCompositeScheduleRequest) Validate() bool {
	return validation.Valid(r)
}

func (r GetCompositeScheduleRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(getCompositeScheduleRequestJSON{ConnectorId: r.connectorId, Duration: r.duration, ChargingRateUnit: r.chargingRateUnit})
}

func (r *GetCompositeScheduleRequest) UnmarshalJSON(data []byte) error {
	var raw getCompositeScheduleRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request GetCompositeScheduleRequest
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	if raw.Duration != nil {
		if err := request.SetDuration(*raw.Duration); err != nil {
			return err
		}
	}
	if raw.ChargingRateUnit != "" {
		if err := request.SetChargingRateUnit(raw.ChargingRateUnit); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type GetCompositeScheduleResponse struct {
	status           GetCompositeScheduleStatus
	connectorId      *int
	scheduleStart    *types.DateTime
	chargingSchedule *types.ChargingSchedule
}

type getCompositeScheduleResponseJSON struct {
	Status           GetCompositeScheduleStatus `json:"status,omitempty"`
	ConnectorId      *int                       `json:"connectorId,omitempty"`
	ScheduleStart    *types.DateTime            `json:"scheduleStart,omitempty"`
	ChargingSchedule *types.ChargingSchedule    `json:"chargingSchedule,omitempty"`
}

func NewGetCompositeScheduleResponse(status GetCompositeScheduleStatus) (*GetCompositeScheduleResponse, error) {
	response := &GetCompositeScheduleResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *GetCompositeScheduleResponse) GetFeatureName() string {
	return GetCompositeScheduleFeatureName
}

func (c *GetCompositeScheduleResponse) Status() GetCompositeScheduleStatus {
	return c.status
}

func (c *GetCompositeScheduleResponse) SetStatus(status GetCompositeScheduleStatus) error {
	if err := validation.Check("status", status, "getCompositeScheduleStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *GetCompositeScheduleResponse) ConnectorId() *int {
	return c.connectorId
}

func (c *GetCompositeScheduleResponse) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	c.connectorId = &connectorId
	return nil
}

func (c *GetCompositeScheduleResponse) ScheduleStart() *types.DateTime {
	return c.scheduleStart
}

func (c *GetCompositeScheduleResponse) SetScheduleStart(scheduleStart time.Time) {
	c.scheduleStart = types.NewDateTime(scheduleStart)
}

func (c *GetCompositeScheduleResponse) ChargingSchedule() *types.ChargingSchedule {
	return c.chargingSchedule
}

func (c *GetCompositeScheduleResponse) SetChargingSchedule(chargingSchedule *types.ChargingSchedule) {
	c.chargingSchedule = chargingSchedule
}

func (c *GetCompositeScheduleResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	v.Optional("scheduleStart", c.scheduleStart)
	v.Optional("chargingSchedule", c.chargingSchedule)
	return v.Result()
}

func (c *GetCompositeScheduleResponse) Validate() bool {
	return validation.Valid(c)
}

func (c GetCompositeScheduleResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(getCompositeScheduleResponseJSON{
		Status:           c.status,
		ConnectorId:      c.connectorId,
		ScheduleStart:    c.scheduleStart,
		ChargingSchedule: c.chargingSchedule,
	})
}

func (c *GetCompositeScheduleResponse) UnmarshalJSON(data []byte) error {
	var raw getCompositeScheduleResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	response := GetCompositeScheduleResponse{scheduleStart: raw.ScheduleStart, chargingSchedule: raw.ChargingSchedule}
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	if raw.ConnectorId != nil {
		if err := response.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type GetCompositeScheduleFeature struct{}

func (f GetCompositeScheduleFeature) GetFeatureName() string {
	return GetCompositeScheduleFeatureName
}

func (f GetCompositeScheduleFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetCompositeScheduleRequest{})
}

func (f GetCompositeScheduleFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetCompositeScheduleResponse{})
}
