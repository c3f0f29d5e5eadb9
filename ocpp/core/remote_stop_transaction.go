package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const RemoteStopTransactionFeatureName = "RemoteStopTransaction"

type RemoteStopTransactionRequest struct {
	transactionId *int
}

type remoteStopTransactionRequestJSON struct {
	TransactionId *int `json:"transactionId,omitempty"`
}

func NewRemoteStopTransactionRequest(transactionId int) *RemoteStopTransactionRequest {
	return &RemoteStopTransactionRequest{transactionId: &transactionId}
}

func (r *RemoteStopTransactionRequest) GetFeatureName() string {
	return RemoteStopTransactionFeatureName
}

func (r *RemoteStopTransactionRequest) TransactionId() int {
	if r.transactionId == nil {
		return 0
	}
	return *r.transactionId
}

func (r *RemoteStopTransactionRequest) SetTransactionId(transactionId int) {
	r.transactionId = &transactionId
}

func (r *RemoteStopTransactionRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("transactionId", r.transactionId != nil)
	return c.Result()
}

func (r *RemoteStopTransactionRequest) Validate() bool {
	return validation.Valid(r)
}

func (r RemoteStopTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(remoteStopTransactionRequestJSON{TransactionId: r.transactionId})
}

func (r *RemoteStopTransactionRequest) UnmarshalJSON(data []byte) error {
	var raw remoteStopTransactionRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = RemoteStopTransactionRequest{transactionId: raw.TransactionId}
	return nil
}

type RemoteStopTransactionResponse struct {
	status RemoteStartStopStatus
}

func NewRemoteStopTransactionResponse(status RemoteStartStopStatus) (*RemoteStopTransactionResponse, error) {
	response := &RemoteStopTransactionResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *RemoteStopTransactionResponse) GetFeatureName() string {
	return RemoteStopTransactionFeatureName
}

func (c *RemoteStopTransactionResponse) Status() RemoteStartStopStatus {
	return c.status
}

func (c *RemoteStopTransactionResponse) SetStatus(status RemoteStartStopStatus) error {
	if err := validation.Check("status", status, "remoteStartStopStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *RemoteStopTransactionResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *RemoteStopTransactionResponse) Validate() bool {
	return validation.Valid(c)
}

func (c RemoteStopTransactionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(remoteStartStopResponseJSON{Status: c.status})
}

func (c *RemoteStopTransactionResponse) UnmarshalJSON(data []byte) error {
	var raw remoteStartStopResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response RemoteStopTransactionResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type RemoteStopTransactionFeature struct{}

func (f RemoteStopTransactionFeature) GetFeatureName() string {
	return RemoteStopTransactionFeatureName
}

func (f RemoteStopTransactionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(RemoteStopTransactionRequest{})
}

func (f RemoteStopTransactionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(RemoteStopTransactionResponse{})
}
