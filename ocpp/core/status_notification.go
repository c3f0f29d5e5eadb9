package core

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const StatusNotificationFeatureName = "StatusNotification"

type ChargePointErrorCode string

type ChargePointStatus string

const (
	ConnectorLockFailure           ChargePointErrorCode = "ConnectorLockFailure"
	EVCommunicationError           ChargePointErrorCode = "EVCommunicationError"
	GroundFailure                  ChargePointErrorCode = "GroundFailure"
	HighTemperature                ChargePointErrorCode = "HighTemperature"
	InternalError                  ChargePointErrorCode = "InternalError"
	LocalListConflict              ChargePointErrorCode = "LocalListConflict"
	NoError                        ChargePointErrorCode = "NoError"
	OtherError                     ChargePointErrorCode = "OtherError"
	OverCurrentFailure             ChargePointErrorCode = "OverCurrentFailure"
	OverVoltage                    ChargePointErrorCode = "OverVoltage"
	PowerMeterFailure              ChargePointErrorCode = "PowerMeterFailure"
	PowerSwitchFailure             ChargePointErrorCode = "PowerSwitchFailure"
	ReaderFailure                  ChargePointErrorCode = "ReaderFailure"
	ResetFailure                   ChargePointErrorCode = "ResetFailure"
	UnderVoltage                   ChargePointErrorCode = "UnderVoltage"
	WeakSignal                     ChargePointErrorCode = "WeakSignal"
	ChargePointStatusAvailable     ChargePointStatus    = "Available"
	ChargePointStatusPreparing     ChargePointStatus    = "Preparing"
	ChargePointStatusCharging      ChargePointStatus    = "Charging"
	ChargePointStatusSuspendedEVSE ChargePointStatus    = "SuspendedEVSE"
	ChargePointStatusSuspendedEV   ChargePointStatus    = "SuspendedEV"
	ChargePointStatusFinishing     ChargePointStatus    = "Finishing"
	ChargePointStatusReserved      ChargePointStatus    = "Reserved"
	ChargePointStatusUnavailable   ChargePointStatus    = "Unavailable"
	ChargePointStatusFaulted       ChargePointStatus    = "Faulted"
)

func init() {
	validation.RegisterEnum("chargePointErrorCode",
		string(ConnectorLockFailure),
		string(EVCommunicationError),
		string(GroundFailure),
		string(HighTemperature),
		string(InternalError),
		string(LocalListConflict),
		string(NoError),
		string(OtherError),
		string(OverCurrentFailure),
		string(OverVoltage),
		string(PowerMeterFailure),
		string(PowerSwitchFailure),
		string(ReaderFailure),
		string(ResetFailure),
		string(UnderVoltage),
		string(WeakSignal))
	validation.RegisterEnum("chargePointStatus",
		string(ChargePointStatusAvailable),
		string(ChargePointStatusPreparing),
		string(ChargePointStatusCharging),
		string(ChargePointStatusSuspendedEVSE),
		string(ChargePointStatusSuspendedEV),
		string(ChargePointStatusFinishing),
		string(ChargePointStatusReserved),
		string(ChargePointStatusUnavailable),
		string(ChargePointStatusFaulted))
}

// StatusNotificationRequest reports a status change or an error of a connector,
// connector 0 stands for the charge point main controller.
type StatusNotificationRequest struct {
	connectorId     *int
	errorCode       ChargePointErrorCode
	info            string
	status          ChargePointStatus
	timestamp       *types.DateTime
	vendorId        string
	vendorErrorCode string
}

type statusNotificationRequestJSON struct {
	ConnectorId     *int                 `json:"connectorId,omitempty"`
	ErrorCode       ChargePointErrorCode `json:"errorCode,omitempty"`
	Info            string               `json:"info,omitempty"`
	Status          ChargePointStatus    `json:"status,omitempty"`
	Timestamp       *types.DateTime      `json:"timestamp,omitempty"`
	VendorId        string               `json:"vendorId,omitempty"`
	VendorErrorCode string               `json:"vendorErrorCode,omitempty"`
}

func NewStatusNotificationRequest(connectorId int, errorCode ChargePointErrorCode, status ChargePointStatus) (*StatusNotificationRequest, error) {
	request := &StatusNotificationRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	if err := request.SetErrorCode(errorCode); err != nil {
		return nil, err
	}
	if err := request.SetStatus(status); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *StatusNotificationRequest) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (r *StatusNotificationRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *StatusNotificationRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *StatusNotificationRequest) ErrorCode() ChargePointErrorCode {
	return r.errorCode
}

func (r *StatusNotificationRequest) SetErrorCode(errorCode ChargePointErrorCode) error {
	if err := validation.Check("errorCode", errorCode, "chargePointErrorCode"); err != nil {
		return err
	}
	r.errorCode = errorCode
	return nil
}

func (r *StatusNotificationRequest) Info() string {
	return r.info
}

func (r *StatusNotificationRequest) SetInfo(info string) error {
	return setString(&r.info, "info", info, "max=50")
}

func (r *StatusNotificationRequest) Status() ChargePointStatus {
	return r.status
}

func (r *StatusNotificationRequest) SetStatus(status ChargePointStatus) error {
	if err := validation.Check("status", status, "chargePointStatus"); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *StatusNotificationRequest) Timestamp() *types.DateTime {
	return r.timestamp
}

func (r *StatusNotificationRequest) SetTimestamp(timestamp time.Time) {
	r.timestamp = types.NewDateTime(timestamp)
}

func (r *StatusNotificationRequest) VendorId() string {
	return r.vendorId
}

func (r *StatusNotificationRequest) SetVendorId(vendorId string) error {
	return setString(&r.vendorId, "vendorId", vendorId, "max=255")
}

func (r *StatusNotificationRequest) VendorErrorCode() string {
	return r.vendorErrorCode
}

func (r *StatusNotificationRequest) SetVendorErrorCode(vendorErrorCode string) error {
	return setString(&r.vendorErrorCode, "vendorErrorCode", vendorErrorCode, "max=50")
}

func (r *StatusNotificationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Require("errorCode", r.errorCode != "")
	c.Require("status", r.status != "")
	c.Optional("timestamp", r.timestamp)
	return c.Result()
}

func (r *StatusNotificationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r StatusNotificationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(statusNotificationRequestJSON{
		ConnectorId:     r.connectorId,
		ErrorCode:       r.errorCode,
		Info:            r.info,
		Status:          r.status,
		Timestamp:       r.timestamp,
		VendorId:        r.vendorId,
		VendorErrorCode: r.vendorErrorCode,
	})
}

func (r *StatusNotificationRequest) UnmarshalJSON(data []byte) error {
	var raw statusNotificationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := StatusNotificationRequest{timestamp: raw.Timestamp}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	if raw.ErrorCode != "" {
		if err := request.SetErrorCode(raw.ErrorCode); err != nil {
			return err
		}
	}
	if raw.Status != "" {
		if err := request.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	if err := request.SetInfo(raw.Info); err != nil {
		return err
	}
	if err := request.SetVendorId(raw.VendorId); err != nil {
		return err
	}
	if err := request.SetVendorErrorCode(raw.VendorErrorCode); err != nil {
		return err
	}
	*r = request
	return nil
}

type StatusNotificationResponse struct{}

func NewStatusNotificationResponse() *StatusNotificationResponse {
	return &StatusNotificationResponse{}
}

func (c *StatusNotificationResponse) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (c *StatusNotificationResponse) Violations() validation.Errors {
	return nil
}

func (c *StatusNotificationResponse) Validate() bool {
	return true
}

func (c StatusNotificationResponse) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *StatusNotificationResponse) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type StatusNotificationFeature struct{}

func (f StatusNotificationFeature) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (f StatusNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(StatusNotificationRequest{})
}

func (f StatusNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(StatusNotificationResponse{})
}
