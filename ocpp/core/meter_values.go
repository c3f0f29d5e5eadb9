package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const MeterValuesFeatureName = "MeterValues"

// MeterValuesRequest carries sampled meter values for a connector, optionally bound to a transaction.
type MeterValuesRequest struct {
	connectorId   *int
	transactionId *int
	meterValue    []*types.MeterValue
}

type meterValuesRequestJSON struct {
	ConnectorId   *int                `json:"connectorId,omitempty"`
	TransactionId *int                `json:"transactionId,omitempty"`
	MeterValue    []*types.MeterValue `json:"meterValue,omitempty"`
}

func NewMeterValuesRequest(connectorId int, meterValue ...*types.MeterValue) (*MeterValuesRequest, error) {
	request := &MeterValuesRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	if err := request.SetMeterValue(meterValue); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *MeterValuesRequest) GetFeatureName() string {
	return MeterValuesFeatureName
}

func (r *MeterValuesRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *MeterValuesRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *MeterValuesRequest) TransactionId() *int {
	return r.transactionId
}

func (r *MeterValuesRequest) SetTransactionId(transactionId int) {
	r.transactionId = &transactionId
}

func (r *MeterValuesRequest) MeterValue() []*types.MeterValue {
	return r.meterValue
}

func (r *MeterValuesRequest) SetMeterValue(meterValue []*types.MeterValue) error {
	if err := validation.Check("meterValue", meterValue, "min=1"); err != nil {
		return err
	}
	r.meterValue = meterValue
	return nil
}

func (r *MeterValuesRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Require("meterValue", len(r.meterValue) > 0)
	validation.Each(&c, "meterValue", r.meterValue)
	return c.Result()
}

func (r *MeterValuesRequest) Validate() bool {
	return validation.Valid(r)
}

func (r MeterValuesRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(meterValuesRequestJSON{ConnectorId: r.connectorId, TransactionId: r.transactionId, MeterValue: r.meterValue})
}

func (r *MeterValuesRequest) UnmarshalJSON(data []byte) error {
	var raw meterValuesRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := MeterValuesRequest{transactionId: raw.TransactionId}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	if raw.MeterValue != nil {
		if err := request.SetMeterValue(raw.MeterValue); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type MeterValuesResponse struct{}

func NewMeterValuesResponse() *MeterValuesResponse {
	return &MeterValuesResponse{}
}

func (c *MeterValuesResponse) GetFeatureName() string {
	return MeterValuesFeatureName
}

func (c *MeterValuesResponse) Violations() validation.Errors {
	return nil
}

func (c *MeterValuesResponse) Validate() bool {
	return true
}

func (c MeterValuesResponse) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *MeterValuesResponse) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type MeterValuesFeature struct{}

func (f MeterValuesFeature) GetFeatureName() string {
	return MeterValuesFeatureName
}

func (f MeterValuesFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(MeterValuesRequest{})
}

func (f MeterValuesFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(MeterValuesResponse{})
}
