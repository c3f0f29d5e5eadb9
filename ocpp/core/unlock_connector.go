package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const UnlockConnectorFeatureName = "UnlockConnector"

type UnlockStatus string

const (
	UnlockStatusUnlocked     UnlockStatus = "Unlocked"
	UnlockStatusUnlockFailed UnlockStatus = "UnlockFailed"
	UnlockStatusNotSupported UnlockStatus = "NotSupported"
)

func init() {
	validation.RegisterEnum("unlockStatus",
		string(UnlockStatusUnlocked),
		string(UnlockStatusUnlockFailed),
		string(UnlockStatusNotSupported))
}

type UnlockConnectorRequest struct {
	connectorId *int
}

type unlockConnectorRequestJSON struct {
	ConnectorId *int `json:"connectorId,omitempty"`
}

func NewUnlockConnectorRequest(connectorId int) (*UnlockConnectorRequest, error) {
	request := &UnlockConnectorRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *UnlockConnectorRequest) GetFeatureName() string {
	return UnlockConnectorFeatureName
}

func (r *UnlockConnectorRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *UnlockConnectorRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gt=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *UnlockConnectorRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	return c.Result()
}

func (r *UnlockConnectorRequest) Validate() bool {
	return validation.Valid(r)
}

func (r UnlockConnectorRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(unlockConnectorRequestJSON{ConnectorId: r.connectorId})
}

func (r *UnlockConnectorRequest) UnmarshalJSON(data []byte) error {
	var raw unlockConnectorRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request UnlockConnectorRequest
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type UnlockConnectorResponse struct {
	status UnlockStatus
}

type unlockConnectorResponseJSON struct {
	Status UnlockStatus `json:"status,omitempty"`
}

func NewUnlockConnectorResponse(status UnlockStatus) (*UnlockConnectorResponse, error) {
	response := &UnlockConnectorResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *UnlockConnectorResponse) GetFeatureName() string {
	return UnlockConnectorFeatureName
}

func (c *UnlockConnectorResponse) Status() UnlockStatus {
	return c.status
}

func (c *UnlockConnectorResponse) SetStatus(status UnlockStatus) error {
	if err := validation.Check("status", status, "unlockStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UnlockConnectorResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *UnlockConnectorResponse) Validate() bool {
	return validation.Valid(c)
}

func (c UnlockConnectorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(unlockConnectorResponseJSON{Status: c.status})
}

func (c *UnlockConnectorResponse) UnmarshalJSON(data []byte) error {
	var raw unlockConnectorResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response UnlockConnectorResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type UnlockConnectorFeature struct{}

func (f UnlockConnectorFeature) GetFeatureName() string {
	return UnlockConnectorFeatureName
}

func (f UnlockConnectorFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(UnlockConnectorRequest{})
}

func (f UnlockConnectorFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(UnlockConnectorResponse{})
}
