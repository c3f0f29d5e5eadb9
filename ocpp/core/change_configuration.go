package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const ChangeConfigurationFeatureName = "ChangeConfiguration"

type ConfigurationStatus string

const (
	ConfigurationStatusAccepted       ConfigurationStatus = "Accepted"
	ConfigurationStatusRejected       ConfigurationStatus = "Rejected"
	ConfigurationStatusRebootRequired ConfigurationStatus = "RebootRequired"
	ConfigurationStatusNotSupported   ConfigurationStatus = "NotSupported"
)

func init() {
	validation.RegisterEnum("configurationStatus",
		string(ConfigurationStatusAccepted),
		string(ConfigurationStatusRejected),
		string(ConfigurationStatusRebootRequired),
		string(ConfigurationStatusNotSupported))
}

const (
	configurationKeyRules   = "required,max=50"
	configurationValueRules = "max=500"
)

type ChangeConfigurationRequest struct {
	key   string
	value *string
}

type changeConfigurationRequestJSON struct {
	Key   string  `json:"key,omitempty"`
	Value *string `json:"value,omitempty"`
}

func NewChangeConfigurationRequest(key string, value string) (*ChangeConfigurationRequest, error) {
	request := &ChangeConfigurationRequest{}
	if err := request.SetKey(key); err != nil {
		return nil, err
	}
	if err := request.SetValue(value); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *ChangeConfigurationRequest) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func (r *ChangeConfigurationRequest) Key() string {
	return r.key
}

func (r *ChangeConfigurationRequest) SetKey(key string) error {
	return setString(&r.key, "key", key, configurationKeyRules)
}

// Value is empty when unset, an explicitly empty value is legal.
func (r *ChangeConfigurationRequest) Value() string {
	if r.value == nil {
		return ""
	}
	return *r.value
}

func (r *ChangeConfigurationRequest) SetValue(value string) error {
	if err := validation.Check("value", value, configurationValueRules); err != nil {
		return err
	}
	r.value = &value
	return nil
}

func (r *ChangeConfigurationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("key", r.key != "")
	c.Require("value", r.value != nil)
	return c.Result()
}

func (r *ChangeConfigurationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r ChangeConfigurationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeConfigurationRequestJSON{Key: r.key, Value: r.value})
}

func (r *ChangeConfigurationRequest) UnmarshalJSON(data []byte) error {
	var raw changeConfigurationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request ChangeConfigurationRequest
	if raw.Key != "" {
		if err := request.SetKey(raw.Key); err != nil {
			return err
		}
	}
	if raw.Value != nil {
		if err := request.SetValue(*raw.Value); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type ChangeConfigurationResponse struct {
	status ConfigurationStatus
}

type changeConfigurationResponseJSON struct {
	Status ConfigurationStatus `json:"status,omitempty"`
}

func NewChangeConfigurationResponse(status ConfigurationStatus) (*ChangeConfigurationResponse, error) {
	response := &ChangeConfigurationResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ChangeConfigurationResponse) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func (c *ChangeConfigurationResponse) Status() ConfigurationStatus {
	return c.status
}

func (c *ChangeConfigurationResponse) SetStatus(status ConfigurationStatus) error {
	if err := validation.Check("status", status, "configurationStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeConfigurationResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ChangeConfigurationResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ChangeConfigurationResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeConfigurationResponseJSON{Status: c.status})
}

func (c *ChangeConfigurationResponse) UnmarshalJSON(data []byte) error {
	var raw changeConfigurationResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ChangeConfigurationResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ChangeConfigurationFeature struct{}

func (f ChangeConfigurationFeature) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func (f ChangeConfigurationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ChangeConfigurationRequest{})
}

func (f ChangeConfigurationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ChangeConfigurationResponse{})
}
