package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const GetConfigurationFeatureName = "GetConfiguration"

// ConfigurationKey Contains information about a specific configuration key. It is returned in GetConfigurationResponse
type ConfigurationKey struct {
	key      string
	readonly bool
	value    *string
}

type configurationKeyJSON struct {
	Key      string  `json:"key,omitempty"`
	Readonly bool    `json:"readonly"`
	Value    *string `json:"value,omitempty"`
}

func NewConfigurationKey(key string, readonly bool) (*ConfigurationKey, error) {
	configurationKey := &ConfigurationKey{readonly: readonly}
	if err := configurationKey.SetKey(key); err != nil {
		return nil, err
	}
	return configurationKey, nil
}

func (k *ConfigurationKey) Key() string {
	return k.key
}

func (k *ConfigurationKey) SetKey(key string) error {
	return setString(&k.key, "key", key, configurationKeyRules)
}

func (k *ConfigurationKey) Readonly() bool {
	return k.readonly
}

func (k *ConfigurationKey) SetReadonly(readonly bool) {
	k.readonly = readonly
}

func (k *ConfigurationKey) Value() *string {
	return k.value
}

func (k *ConfigurationKey) SetValue(value string) error {
	if err := validation.Check("value", value, configurationValueRules); err != nil {
		return err
	}
	k.value = &value
	return nil
}

func (k *ConfigurationKey) Violations() validation.Errors {
	var c validation.Collector
	c.Require("key", k.key != "")
	return c.Result()
}

func (k *ConfigurationKey) Validate() bool {
	return validation.Valid(k)
}

func (k ConfigurationKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(configurationKeyJSON{Key: k.key, Readonly: k.readonly, Value: k.value})
}

func (k *ConfigurationKey) UnmarshalJSON(data []byte) error {
	var raw configurationKeyJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	configurationKey := ConfigurationKey{readonly: raw.Readonly}
	if raw.Key != "" {
		if err := configurationKey.SetKey(raw.Key); err != nil {
			return err
		}
	}
	if raw.Value != nil {
		if err := configurationKey.SetValue(*raw.Value); err != nil {
			return err
		}
	}
	*k = configurationKey
	return nil
}

// GetConfigurationRequest The field definition of the GetConfiguration request payload sent by the Central System to the Charge Point.
// An empty key list asks for every key.
type GetConfigurationRequest struct {
	key []string
}

type getConfigurationRequestJSON struct {
	Key []string `json:"key,omitempty"`
}

func NewGetConfigurationRequest(key ...string) (*GetConfigurationRequest, error) {
	request := &GetConfigurationRequest{}
	if err := request.SetKey(key); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *GetConfigurationRequest) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func (r *GetConfigurationRequest) Key() []string {
	return r.key
}

func (r *GetConfigurationRequest) SetKey(key []string) error {
	if err := validation.Check("key", key, "omitempty,unique,dive,required,max=50"); err != nil {
		return err
	}
	r.key = key
	return nil
}

func (r *GetConfigurationRequest) Violations() validation.Errors {
	return nil
}

func (r *GetConfigurationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r GetConfigurationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(getConfigurationRequestJSON{Key: r.key})
}

func (r *GetConfigurationRequest) UnmarshalJSON(data []byte) error {
	var raw getConfigurationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request GetConfigurationRequest
	if err := request.SetKey(raw.Key); err != nil {
		return err
	}
	*r = request
	return nil
}

type GetConfigurationResponse struct {
	configurationKey []*ConfigurationKey
	unknownKey       []string
}

type getConfigurationResponseJSON struct {
	ConfigurationKey []*ConfigurationKey `json:"configurationKey,omitempty"`
	UnknownKey       []string            `json:"unknownKey,omitempty"`
}

func NewGetConfigurationResponse(configurationKey []*ConfigurationKey, unknownKey []string) (*GetConfigurationResponse, error) {
	response := &GetConfigurationResponse{configurationKey: configurationKey}
	if err := response.SetUnknownKey(unknownKey); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *GetConfigurationResponse) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func (c *GetConfigurationResponse) ConfigurationKey() []*ConfigurationKey {
	return c.configurationKey
}

func (c *GetConfigurationResponse) SetConfigurationKey(configurationKey []*ConfigurationKey) {
	c.configurationKey = configurationKey
}

func (c *GetConfigurationResponse) UnknownKey() []string {
	return c.unknownKey
}

func (c *GetConfigurationResponse) SetUnknownKey(unknownKey []string) error {
	if err := validation.Check("unknownKey", unknownKey, "omitempty,dive,required,max=50"); err != nil {
		return err
	}
	c.unknownKey = unknownKey
	return nil
}

func (c *GetConfigurationResponse) Violations() validation.Errors {
	var v validation.Collector
	validation.Each(&v, "configurationKey", c.configurationKey)
	return v.Result()
}

func (c *GetConfigurationResponse) Validate() bool {
	return validation.Valid(c)
}

func (c GetConfigurationResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(getConfigurationResponseJSON{ConfigurationKey: c.configurationKey, UnknownKey: c.unknownKey})
}

func (c *GetConfigurationResponse) UnmarshalJSON(data []byte) error {
	var raw getConfigurationResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	response := GetConfigurationResponse{configurationKey: raw.ConfigurationKey}
	if err := response.SetUnknownKey(raw.UnknownKey); err != nil {
		return err
	}
	*c = response
	return nil
}

type GetConfigurationFeature struct{}

func (f GetConfigurationFeature) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func (f GetConfigurationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetConfigurationRequest{})
}

func (f GetConfigurationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetConfigurationResponse{})
}
