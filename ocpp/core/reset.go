package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const ResetFeatureName = "Reset"

type ResetType string

type ResetStatus string

const (
	ResetTypeHard       ResetType   = "Hard"
	ResetTypeSoft       ResetType   = "Soft"
	ResetStatusAccepted ResetStatus = "Accepted"
	ResetStatusRejected ResetStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("resetType", string(ResetTypeHard), string(ResetTypeSoft))
	validation.RegisterEnum("resetStatus", string(ResetStatusAccepted), string(ResetStatusRejected))
}

type ResetRequest struct {
	resetType ResetType
}

type resetRequestJSON struct {
	Type ResetType `json:"type,omitempty"`
}

func NewResetRequest(resetType ResetType) (*ResetRequest, error) {
	request := &ResetRequest{}
	if err := request.SetType(resetType); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *ResetRequest) GetFeatureName() string {
	return ResetFeatureName
}

func (r *ResetRequest) Type() ResetType {
	return r.resetType
}

func (r *ResetRequest) SetType(resetType ResetType) error {
	if err := validation.Check("type", resetType, "resetType"); err != nil {
		return err
	}
	r.resetType = resetType
	return nil
}

func (r *ResetRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("type", r.resetType != "")
	return c.Result()
}

func (r *ResetRequest) Validate() bool {
	return validation.Valid(r)
}

func (r ResetRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(resetRequestJSON{Type: r.resetType})
}

func (r *ResetRequest) UnmarshalJSON(data []byte) error {
	var raw resetRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request ResetRequest
	if raw.Type != "" {
		if err := request.SetType(raw.Type); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type ResetResponse struct {
	status ResetStatus
}

type resetResponseJSON struct {
	Status ResetStatus `json:"status,omitempty"`
}

func NewResetResponse(status ResetStatus) (*ResetResponse, error) {
	response := &ResetResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ResetResponse) GetFeatureName() string {
	return ResetFeatureName
}

func (c *ResetResponse) Status() ResetStatus {
	return c.status
}

func (c *ResetResponse) SetStatus(status ResetStatus) error {
	if err := validation.Check("status", status, "resetStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ResetResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ResetResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ResetResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(resetResponseJSON{Status: c.status})
}

func (c *ResetResponse) UnmarshalJSON(data []byte) error {
	var raw resetResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ResetResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ResetFeature struct{}

func (f ResetFeature) GetFeatureName() string {
	return ResetFeatureName
}

func (f ResetFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ResetRequest{})
}

func (f ResetFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ResetResponse{})
}
