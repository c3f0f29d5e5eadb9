package firmware

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const UpdateFirmwareFeatureName = "UpdateFirmware"

// UpdateFirmwareRequest instructs a charge point to fetch firmware from location
// no earlier than retrieveDate.
type UpdateFirmwareRequest struct {
	location      string
	retries       *int
	retrieveDate  *types.DateTime
	retryInterval *int
}

type updateFirmwareRequestJSON struct {
	Location      string          `json:"location,omitempty"`
	Retries       *int            `json:"retries,omitempty"`
	RetrieveDate  *types.DateTime `json:"retrieveDate,omitempty"`
	RetryInterval *int            `json:"retryInterval,omitempty"`
}

func NewUpdateFirmwareRequest(location string, retrieveDate time.Time) (*UpdateFirmwareRequest, error) {
	request := &UpdateFirmwareRequest{retrieveDate: types.NewDateTime(retrieveDate)}
	if err := request.SetLocation(location); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *UpdateFirmwareRequest) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (r *UpdateFirmwareRequest) Location() string {
	return r.location
}

func (r *UpdateFirmwareRequest) SetLocation(location string) error {
	if err := validation.Check("location", location, "required,uri"); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *UpdateFirmwareRequest) Retries() *int {
	return r.retries
}

func (r *UpdateFirmwareRequest) SetRetries(retries int) error {
	if err := validation.Check("retries", retries, retryRules); err != nil {
		return err
	}
	r.retries = &retries
	return nil
}

func (r *UpdateFirmwareRequest) RetrieveDate() *types.DateTime {
	return r.retrieveDate
}

func (r *UpdateFirmwareRequest) SetRetrieveDate(retrieveDate time.Time) {
	r.retrieveDate = types.NewDateTime(retrieveDate)
}

func (r *UpdateFirmwareRequest) RetryInterval() *int {
	return r.retryInterval
}

func (r *UpdateFirmwareRequest) SetRetryInterval(retryInterval int) error {
	if err := validation.Check("retryInterval", retryInterval, retryRules); err != nil {
		return err
	}
	r.retryInterval = &retryInterval
	return nil
}

func (r *UpdateFirmwareRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("location", r.location != "")
	c.Require("retrieveDate", r.retrieveDate.IsSet())
	c.Optional("retrieveDate", r.retrieveDate)
	return c.Result()
}

func (r *UpdateFirmwareRequest) Validate() bool {
	return validation.Valid(r)
}

func (r UpdateFirmwareRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(updateFirmwareRequestJSON{
		Location:      r.location,
		Retries:       r.retries,
		RetrieveDate:  r.retrieveDate,
		RetryInterval: r.retryInterval,
	})
}

func (r *UpdateFirmwareRequest) UnmarshalJSON(data []byte) error {
	var raw updateFirmwareRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := UpdateFirmwareRequest{retrieveDate: raw.RetrieveDate}
	if raw.Location != "" {
		if err := request.SetLocation(raw.Location); err != nil {
			return err
		}
	}
	if raw.Retries != nil {
		if err := request.SetRetries(*raw.Retries); err != nil {
			return err
		}
	}
	if raw.RetryInterval != nil {
		if err := request.SetRetryInterval(*raw.RetryInterval); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type UpdateFirmwareResponse struct{}

func NewUpdateFirmwareResponse() *UpdateFirmwareResponse {
	return &UpdateFirmwareResponse{}
}

func (c *UpdateFirmwareResponse) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (c *UpdateFirmwareResponse) Violations() validation.Errors {
	return nil
}

func (c *UpdateFirmwareResponse) Validate() bool {
	return true
}

func (c UpdateFirmwareResponse) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *UpdateFirmwareResponse) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type UpdateFirmwareFeature struct{}

func (f UpdateFirmwareFeature) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (f UpdateFirmwareFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(UpdateFirmwareRequest{})
}

func (f UpdateFirmwareFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(UpdateFirmwareResponse{})
}
