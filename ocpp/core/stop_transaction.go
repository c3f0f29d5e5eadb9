package core

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const StopTransactionFeatureName = "StopTransaction"

type Reason string

const (
	ReasonDeAuthorized   Reason = "DeAuthorized"
	ReasonEmergencyStop  Reason = "EmergencyStop"
	ReasonEVDisconnected Reason = "EVDisconnected"
	ReasonHardReset      Reason = "HardReset"
	ReasonLocal          Reason = "Local"
	ReasonOther          Reason = "Other"
	ReasonPowerLoss      Reason = "PowerLoss"
	ReasonReboot         Reason = "Reboot"
	ReasonRemote         Reason = "Remote"
	ReasonSoftReset      Reason = "SoftReset"
	ReasonUnlockCommand  Reason = "UnlockCommand"
)

func init() {
	validation.RegisterEnum("reason",
		string(ReasonDeAuthorized),
		string(ReasonEmergencyStop),
		string(ReasonEVDisconnected),
		string(ReasonHardReset),
		string(ReasonLocal),
		string(ReasonOther),
		string(ReasonPowerLoss),
		string(ReasonReboot),
		string(ReasonRemote),
		string(ReasonSoftReset),
		string(ReasonUnlockCommand))
}

// StopTransactionRequest is sent by the charge point when a transaction ends.
type StopTransactionRequest struct {
	idTag           *types.IdToken
	meterStop       *int
	timestamp       *types.DateTime
	transactionId   *int
	reason          Reason
	transactionData []*types.MeterValue
}

type stopTransactionRequestJSON struct {
	IdTag           *types.IdToken      `json:"idTag,omitempty"`
	MeterStop       *int                `json:"meterStop,omitempty"`
	Timestamp       *types.DateTime     `json:"timestamp,omitempty"`
	TransactionId   *int                `json:"transactionId,omitempty"`
	Reason          Reason              `json:"reason,omitempty"`
	TransactionData []*types.MeterValue `json:"transactionData,omitempty"`
}

func NewStopTransactionRequest(meterStop int, timestamp time.Time, transactionId int) *StopTransactionRequest {
	return &StopTransactionRequest{
		meterStop:     &meterStop,
		timestamp:     types.NewDateTime(timestamp),
		transactionId: &transactionId,
	}
}

func (r *StopTransactionRequest) GetFeatureName() string {
	return StopTransactionFeatureName
}

func (r *StopTransactionRequest) IdTag() *types.IdToken {
	return r.idTag
}

func (r *StopTransactionRequest) SetIdTag(idTag *types.IdToken) {
	r.idTag = idTag
}

func (r *StopTransactionRequest) MeterStop() int {
	if r.meterStop == nil {
		return 0
	}
	return *r.meterStop
}

func (r *StopTransactionRequest) SetMeterStop(meterStop int) {
	r.meterStop = &meterStop
}

func (r *StopTransactionRequest) Timestamp() *types.DateTime {
	return r.timestamp
}

func (r *StopTransactionRequest) SetTimestamp(timestamp time.Time) {
	r.timestamp = types.NewDateTime(timestamp)
}

func (r *StopTransactionRequest) TransactionId() int {
	if r.transactionId == nil {
		return 0
	}
	return *r.transactionId
}

func (r *StopTransactionRequest) SetTransactionId(transactionId int) {
	r.transactionId = &transactionId
}

func (r *StopTransactionRequest) Reason() Reason {
	return r.reason
}

func (r *StopTransactionRequest) SetReason(reason Reason) error {
	if err := validation.Check("reason", reason, "reason"); err != nil {
		return err
	}
	r.reason = reason
	return nil
}

func (r *StopTransactionRequest) TransactionData() []*types.MeterValue {
	return r.transactionData
}

func (r *StopTransactionRequest) SetTransactionData(transactionData []*types.MeterValue) {
	r.transactionData = transactionData
}

func (r *StopTransactionRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Optional("idTag", r.idTag)
	c.Require("meterStop", r.meterStop != nil)
	c.Require("timestamp", r.timestamp.IsSet())
	c.Optional("timestamp", r.timestamp)
	c.Require("transactionId", r.transactionId != nil)
	validation.Each(&c, "transactionData", r.transactionData)
	return c.Result()
}

func (r *StopTransactionRequest) Validate() bool {
	return validation.Valid(r)
}

func (r StopTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(stopTransactionRequestJSON{
		IdTag:           r.idTag,
		MeterStop:       r.meterStop,
		Timestamp:       r.timestamp,
		TransactionId:   r.transactionId,
		Reason:          r.reason,
		TransactionData: r.transactionData,
	})
}

func (r *StopTransactionRequest) UnmarshalJSON(data []byte) error {
	var raw stopTransactionRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := StopTransactionRequest{
		idTag:           raw.IdTag,
		meterStop:       raw.MeterStop,
		timestamp:       raw.Timestamp,
		transactionId:   raw.TransactionId,
		transactionData: raw.TransactionData,
	}
	if raw.Reason != "" {
		if err := request.SetReason(raw.Reason); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type StopTransactionResponse struct {
	idTagInfo *types.IdTagInfo
}

type stopTransactionResponseJSON struct {
	IdTagInfo *types.IdTagInfo `json:"idTagInfo,omitempty"`
}

func NewStopTransactionResponse() *StopTransactionResponse {
	return &StopTransactionResponse{}
}

func (c *StopTransactionResponse) GetFeatureName() string {
	return StopTransactionFeatureName
}

func (c *StopTransactionResponse) IdTagInfo() *types.IdTagInfo {
	return c.idTagInfo
}

func (c *StopTransactionResponse) SetIdTagInfo(idTagInfo *types.IdTagInfo) {
	c.idTagInfo = idTagInfo
}

func (c *StopTransactionResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Optional("idTagInfo", c.idTagInfo)
	return v.Result()
}

func (c *StopTransactionResponse) Validate() bool {
	return validation.Valid(c)
}

func (c StopTransactionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(stopTransactionResponseJSON{IdTagInfo: c.idTagInfo})
}

func (c *StopTransactionResponse) UnmarshalJSON(data []byte) error {
	var raw stopTransactionResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = StopTransactionResponse{idTagInfo: raw.IdTagInfo}
	return nil
}

type StopTransactionFeature struct{}

func (f StopTransactionFeature) GetFeatureName() string {
	return StopTransactionFeatureName
}

func (f StopTransactionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(StopTransactionRequest{})
}

func (f StopTransactionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(StopTransactionResponse{})
}
