package core

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const BootNotificationFeatureName = "BootNotification"

// RegistrationStatus Result of registration in response to a BootNotification request.
type RegistrationStatus string

const (
	RegistrationStatusAccepted RegistrationStatus = "Accepted"
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("registrationStatus",
		string(RegistrationStatusAccepted),
		string(RegistrationStatusPending),
		string(RegistrationStatusRejected))
}

// BootNotificationRequest is sent by a charge point after start-up to announce itself.
type BootNotificationRequest struct {
	chargePointVendor       string
	chargePointModel        string
	chargePointSerialNumber string
	chargeBoxSerialNumber   string
	firmwareVersion         string
	iccid                   string
	imsi                    string
	meterType               string
	meterSerialNumber       string
}

type bootNotificationRequestJSON struct {
	ChargePointVendor       string `json:"chargePointVendor,omitempty"`
	ChargePointModel        string `json:"chargePointModel,omitempty"`
	ChargePointSerialNumber string `json:"chargePointSerialNumber,omitempty"`
	ChargeBoxSerialNumber   string `json:"chargeBoxSerialNumber,omitempty"`
	FirmwareVersion         string `json:"firmwareVersion,omitempty"`
	Iccid                   string `json:"iccid,omitempty"`
	Imsi                    string `json:"imsi,omitempty"`
	MeterType               string `json:"meterType,omitempty"`
	MeterSerialNumber       string `json:"meterSerialNumber,omitempty"`
}

func NewBootNotificationRequest(vendor string, model string) (*BootNotificationRequest, error) {
	request := &BootNotificationRequest{}
	if err := request.SetChargePointVendor(vendor); err != nil {
		return nil, err
	}
	if err := request.SetChargePointModel(model); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *BootNotificationRequest) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (r *BootNotificationRequest) ChargePointVendor() string       { return r.chargePointVendor }
func (r *BootNotificationRequest) ChargePointModel() string        { return r.chargePointModel }
func (r *BootNotificationRequest) ChargePointSerialNumber() string { return r.chargePointSerialNumber }
func (r *BootNotificationRequest) ChargeBoxSerialNumber() string   { return r.chargeBoxSerialNumber }
func (r *BootNotificationRequest) FirmwareVersion() string         { return r.firmwareVersion }
func (r *BootNotificationRequest) Iccid() string                   { return r.iccid }
func (r *BootNotificationRequest) Imsi() string                    { return r.imsi }
func (r *BootNotificationRequest) MeterType() string               { return r.meterType }
func (r *BootNotificationRequest) MeterSerialNumber() string       { return r.meterSerialNumber }

func (r *BootNotificationRequest) SetChargePointVendor(value string) error {
	return setString(&r.chargePointVendor, "chargePointVendor", value, "required,max=20")
}

func (r *BootNotificationRequest) SetChargePointModel(value string) error {
	return setString(&r.chargePointModel, "chargePointModel", value, "required,max=20")
}

func (r *BootNotificationRequest) SetChargePointSerialNumber(value string) error {
	return setString(&r.chargePointSerialNumber, "chargePointSerialNumber", value, "max=25")
}

func (r *BootNotificationRequest) SetChargeBoxSerialNumber(value string) error {
	return setString(&r.chargeBoxSerialNumber, "chargeBoxSerialNumber", value, "max=25")
}

func (r *BootNotificationRequest) SetFirmwareVersion(value string) error {
	return setString(&r.firmwareVersion, "firmwareVersion", value, "max=50")
}

func (r *BootNotificationRequest) SetIccid(value string) error {
	return setString(&r.iccid, "iccid", value, "max=20")
}

func (r *BootNotificationRequest) SetImsi(value string) error {
	return setString(&r.imsi, "imsi", value, "max=20")
}

func (r *BootNotificationRequest) SetMeterType(value string) error {
	return setString(&r.meterType, "meterType", value, "max=25")
}

func (r *BootNotificationRequest) SetMeterSerialNumber(value string) error {
	return setString(&r.meterSerialNumber, "meterSerialNumber", value, "max=25")
}

func (r *BootNotificationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("chargePointVendor", r.chargePointVendor != "")
	c.Require("chargePointModel", r.chargePointModel != "")
	return c.Result()
}

func (r *BootNotificationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r BootNotificationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(bootNotificationRequestJSON{
		ChargePointVendor:       r.chargePointVendor,
		ChargePointModel:        r.chargePointModel,
		ChargePointSerialNumber: r.chargePointSerialNumber,
		ChargeBoxSerialNumber:   r.chargeBoxSerialNumber,
		FirmwareVersion:         r.firmwareVersion,
		Iccid:                   r.iccid,
		Imsi:                    r.imsi,
		MeterType:               r.meterType,
		MeterSerialNumber:       r.meterSerialNumber,
	})
}

func (r *BootNotificationRequest) UnmarshalJSON(data []byte) error {
	var raw bootNotificationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request BootNotificationRequest
	setters := []struct {
		value string
		set   func(string) error
	}{
		{raw.ChargePointVendor, request.SetChargePointVendor},
		{raw.ChargePointModel, request.SetChargePointModel},
		{raw.ChargePointSerialNumber, request.SetChargePointSerialNumber},
		{raw.ChargeBoxSerialNumber, request.SetChargeBoxSerialNumber},
		{raw.FirmwareVersion, request.SetFirmwareVersion},
		{raw.Iccid, request.SetIccid},
		{raw.Imsi, request.SetImsi},
		{raw.MeterType, request.SetMeterType},
		{raw.MeterSerialNumber, request.SetMeterSerialNumber},
	}
	for _, field := range setters {
		if field.value == "" {
			continue
		}
		if err := field.set(field.value); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

// BootNotificationResponse is sent by the central system in reply to BootNotificationRequest.
type BootNotificationResponse struct {
	currentTime *types.DateTime
	interval    *int
	status      RegistrationStatus
}

type bootNotificationResponseJSON struct {
	CurrentTime *types.DateTime    `json:"currentTime,omitempty"`
	Interval    *int               `json:"interval,omitempty"`
	Status      RegistrationStatus `json:"status,omitempty"`
}

// NewBootNotificationResponse Creates a new BootNotificationResponse. There are no optional fields for this message.
func NewBootNotificationResponse(currentTime time.Time, interval int, status RegistrationStatus) (*BootNotificationResponse, error) {
	response := &BootNotificationResponse{currentTime: types.NewDateTime(currentTime)}
	if err := response.SetInterval(interval); err != nil {
		return nil, err
	}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *BootNotificationResponse) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (c *BootNotificationResponse) CurrentTime() *types.DateTime {
	return c.currentTime
}

func (c *BootNotificationResponse) SetCurrentTime(currentTime time.Time) {
	c.currentTime = types.NewDateTime(currentTime)
}

// Interval is the heartbeat interval in seconds when accepted, otherwise the retry delay.
func (c *BootNotificationResponse) Interval() int {
	if c.interval == nil {
		return 0
	}
	return *c.interval
}

func (c *BootNotificationResponse) SetInterval(interval int) error {
	if err := validation.Check("interval", interval, "gte=0"); err != nil {
		return err
	}
	c.interval = &interval
	return nil
}

func (c *BootNotificationResponse) Status() RegistrationStatus {
	return c.status
}

func (c *BootNotificationResponse) SetStatus(status RegistrationStatus) error {
	if err := validation.Check("status", status, "registrationStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *BootNotificationResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("currentTime", c.currentTime.IsSet())
	v.Optional("currentTime", c.currentTime)
	v.Require("interval", c.interval != nil)
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *BootNotificationResponse) Validate() bool {
	return validation.Valid(c)
}

func (c BootNotificationResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(bootNotificationResponseJSON{CurrentTime: c.currentTime, Interval: c.interval, Status: c.status})
}

func (c *BootNotificationResponse) UnmarshalJSON(data []byte) error {
	var raw bootNotificationResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	response := BootNotificationResponse{currentTime: raw.CurrentTime}
	if raw.Interval != nil {
		if err := response.SetInterval(*raw.Interval); err != nil {
			return err
		}
	}
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type BootNotificationFeature struct{}

func (f BootNotificationFeature) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (f BootNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(BootNotificationRequest{})
}

func (f BootNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(BootNotificationResponse{})
}
