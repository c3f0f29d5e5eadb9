package localauth

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const GetLocalListVersionFeatureName = "GetLocalListVersion"

type GetLocalListVersionRequest struct{}

func NewGetLocalListVersionRequest() *GetLocalListVersionRequest {
	return &GetLocalListVersionRequest{}
}

func (r *GetLocalListVersionRequest) GetFeatureName() string {
	return GetLocalListVersionFeatureName
}

func (r *GetLocalListVersionRequest) Violations() validation.Errors {
	return nil
}

func (r *GetLocalListVersionRequest) Validate() bool {
	return true
}

func (r GetLocalListVersionRequest) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (r *GetLocalListVersionRequest) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

// GetLocalListVersionResponse reports the version of the local list, 0 when the list is
// empty and -1 when local authorization is not supported.
type GetLocalListVersionResponse struct {
	listVersion *int
}

type getLocalListVersionResponseJSON struct {
	ListVersion *int `json:"listVersion,omitempty"`
}

func NewGetLocalListVersionResponse(listVersion int) (*GetLocalListVersionResponse, error) {
	response := &GetLocalListVersionResponse{}
	if err := response.SetListVersion(listVersion); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *GetLocalListVersionResponse) GetFeatureName() string {
	return GetLocalListVersionFeatureName
}

func (c *GetLocalListVersionResponse) ListVersion() int {
	if c.listVersion == nil {
		return 0
	}
	return *c.listVersion
}

func (c *GetLocalListVersionResponse) SetListVersion(listVersion int) error {
	if err := validation.Check("listVersion", listVersion, "gte=-1"); err != nil {
		return err
	}
	c.listVersion = &listVersion
	return nil
}

func (c *GetLocalListVersionResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("listVersion", c.listVersion != nil)
	return v.Result()
}

func (c *GetLocalListVersionResponse) Validate() bool {
	return validation.Valid(c)
}

func (c GetLocalListVersionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(getLocalListVersionResponseJSON{ListVersion: c.listVersion})
}

func (c *GetLocalListVersionResponse) UnmarshalJSON(data []byte) error {
	var raw getLocalListVersionResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response GetLocalListVersionResponse
	if raw.ListVersion != nil {
		if err := response.SetListVersion(*raw.ListVersion); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type GetLocalListVersionFeature struct{}

func (f GetLocalListVersionFeature) GetFeatureName() string {
	return GetLocalListVersionFeatureName
}

func (f GetLocalListVersionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetLocalListVersionRequest{})
}

func (f GetLocalListVersionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetLocalListVersionResponse{})
}
