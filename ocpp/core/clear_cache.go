package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const ClearCacheFeatureName = "ClearCache"

type ClearCacheStatus string

const (
	ClearCacheStatusAccepted ClearCacheStatus = "Accepted"
	ClearCacheStatusRejected ClearCacheStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("clearCacheStatus",
		string(ClearCacheStatusAccepted),
		string(ClearCacheStatusRejected))
}

// ClearCacheRequest carries no fields.
type ClearCacheRequest struct{}

func NewClearCacheRequest() *ClearCacheRequest {
	return &ClearCacheRequest{}
}

func (r *ClearCacheRequest) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (r *ClearCacheRequest) Violations() validation.Errors {
	return nil
}

func (r *ClearCacheRequest) Validate() bool {
	return true
}

func (r ClearCacheRequest) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (r *ClearCacheRequest) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type ClearCacheResponse struct {
	status ClearCacheStatus
}

type clearCacheResponseJSON struct {
	Status ClearCacheStatus `json:"status,omitempty"`
}

func NewClearCacheResponse(status ClearCacheStatus) (*ClearCacheResponse, error) {
	response := &ClearCacheResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ClearCacheResponse) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (c *ClearCacheResponse) Status() ClearCacheStatus {
	return c.status
}

func (c *ClearCacheResponse) SetStatus(status ClearCacheStatus) error {
	if err := validation.Check("status", status, "clearCacheStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ClearCacheResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ClearCacheResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ClearCacheResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(clearCacheResponseJSON{Status: c.status})
}

func (c *ClearCacheResponse) UnmarshalJSON(data []byte) error {
	var raw clearCacheResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ClearCacheResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ClearCacheFeature struct{}

func (f ClearCacheFeature) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (f ClearCacheFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ClearCacheRequest{})
}

func (f ClearCacheFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ClearCacheResponse{})
}
