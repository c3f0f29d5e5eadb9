package core

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const StartTransactionFeatureName = "StartTransaction"

// StartTransactionRequest is sent by the charge point to the central system when a transaction starts.
type StartTransactionRequest struct {
	connectorId   *int
	idTag         *types.IdToken
	meterStart    *int
	reservationId *int
	timestamp     *types.DateTime
}

type startTransactionRequestJSON struct {
	ConnectorId   *int            `json:"connectorId,omitempty"`
	IdTag         *types.IdToken  `json:"idTag,omitempty"`
	MeterStart    *int            `json:"meterStart,omitempty"`
	ReservationId *int            `json:"reservationId,omitempty"`
	Timestamp     *types.DateTime `json:"timestamp,omitempty"`
}

// NewStartTransactionRequest creates a request with all required fields set.
func NewStartTransactionRequest(connectorId int, idTag *types.IdToken, meterStart int, timestamp time.Time) (*StartTransactionRequest, error) {
	request := &StartTransactionRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	request.SetIdTag(idTag)
	request.SetMeterStart(meterStart)
	request.SetTimestamp(timestamp)
	return request, nil
}

func (r *StartTransactionRequest) GetFeatureName() string {
	return StartTransactionFeatureName
}

// ConnectorId identifies which connector of the charge point is used.
func (r *StartTransactionRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

// SetConnectorId is required, 0 (the whole charge point) is not a valid connector here.
func (r *StartTransactionRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gt=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

// IdTag is the identifier for which the transaction is started.
func (r *StartTransactionRequest) IdTag() *types.IdToken {
	return r.idTag
}

func (r *StartTransactionRequest) SetIdTag(idTag *types.IdToken) {
	r.idTag = idTag
}

// MeterStart is the connector's energy meter value in Wh at the start of the transaction.
func (r *StartTransactionRequest) MeterStart() int {
	if r.meterStart == nil {
		return 0
	}
	return *r.meterStart
}

func (r *StartTransactionRequest) SetMeterStart(meterStart int) {
	r.meterStart = &meterStart
}

// ReservationId is the optional reservation that terminates as a result of this transaction.
func (r *StartTransactionRequest) ReservationId() *int {
	return r.reservationId
}

func (r *StartTransactionRequest) SetReservationId(reservationId int) {
	r.reservationId = &reservationId
}

func (r *StartTransactionRequest) Timestamp() *types.DateTime {
	return r.timestamp
}

func (r *StartTransactionRequest) SetTimestamp(timestamp time.Time) {
	r.timestamp = types.NewDateTime(timestamp)
}

func (r *StartTransactionRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Nested("idTag", r.idTag)
	c.Require("meterStart", r.meterStart != nil)
	c.Require("timestamp", r.timestamp.IsSet())
	c.Optional("timestamp", r.timestamp)
	return c.Result()
}

func (r *StartTransactionRequest) Validate() bool {
	return validation.Valid(r)
}

func (r StartTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(startTransactionRequestJSON{
		ConnectorId:   r.connectorId,
		IdTag:         r.idTag,
		MeterStart:    r.meterStart,
		ReservationId: r.reservationId,
		Timestamp:     r.timestamp,
	})
}

func (r *StartTransactionRequest) UnmarshalJSON(data []byte) error {
	var raw startTransactionRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := StartTransactionRequest{
		idTag:         raw.IdTag,
		meterStart:    raw.MeterStart,
		reservationId: raw.ReservationId,
		timestamp:     raw.Timestamp,
	}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

// StartTransactionResponse is the central system's answer to StartTransactionRequest.
type StartTransactionResponse struct {
	idTagInfo     *types.IdTagInfo
	transactionId *int
}

type startTransactionResponseJSON struct {
	IdTagInfo     *types.IdTagInfo `json:"idTagInfo,omitempty"`
	TransactionId *int             `json:"transactionId,omitempty"`
}

func NewStartTransactionResponse(idTagInfo *types.IdTagInfo, transactionId int) *StartTransactionResponse {
	return &StartTransactionResponse{idTagInfo: idTagInfo, transactionId: &transactionId}
}

func (c *StartTransactionResponse) GetFeatureName() string {
	return StartTransactionFeatureName
}

func (c *StartTransactionResponse) IdTagInfo() *types.IdTagInfo {
	return c.idTagInfo
}

func (c *StartTransactionResponse) SetIdTagInfo(idTagInfo *types.IdTagInfo) {
	c.idTagInfo = idTagInfo
}

func (c *StartTransactionResponse) TransactionId() int {
	if c.transactionId == nil {
		return 0
	}
	return *c.transactionId
}

func (c *StartTransactionResponse) SetTransactionId(transactionId int) {
	c.transactionId = &transactionId
}

func (c *StartTransactionResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Nested("idTagInfo", c.idTagInfo)
	v.Require("transactionId", c.transactionId != nil)
	return v.Result()
}

func (c *StartTransactionResponse) Validate() bool {
	return validation.Valid(c)
}

func (c StartTransactionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(startTransactionResponseJSON{IdTagInfo: c.idTagInfo, TransactionId: c.transactionId})
}

func (c *StartTransactionResponse) UnmarshalJSON(data []byte) error {
	var raw startTransactionResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = StartTransactionResponse{idTagInfo: raw.IdTagInfo, transactionId: raw.TransactionId}
	return nil
}

type StartTransactionFeature struct{}

func (f StartTransactionFeature) GetFeatureName() string {
	return StartTransactionFeatureName
}

func (f StartTransactionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(StartTransactionRequest{})
}

func (f StartTransactionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(StartTransactionResponse{})
}
