package firmware

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const GetDiagnosticsFeatureName = "GetDiagnostics"

// GetDiagnosticsRequest asks a charge point to upload diagnostics to location,
// optionally restricted to the window between startTime and stopTime.
type GetDiagnosticsRequest struct {
	location      string
	retries       *int
	retryInterval *int
	startTime     *types.DateTime
	stopTime      *types.DateTime
}

type getDiagnosticsRequestJSON struct {
	Location      string          `json:"location,omitempty"`
	Retries       *int            `json:"retries,omitempty"`
	RetryInterval *int            `json:"retryInterval,omitempty"`
	StartTime     *types.DateTime `json:"startTime,omitempty"`
	StopTime      *types.DateTime `json:"stopTime,omitempty"`
}

func NewGetDiagnosticsRequest(location string) (*GetDiagnosticsRequest, error) {
	request := &GetDiagnosticsRequest{}
	if err := request.SetLocation(location); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *GetDiagnosticsRequest) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

func (r *GetDiagnosticsRequest) Location() string {
	return r.location
}

func (r *GetDiagnosticsRequest) SetLocation(location string) error {
	if err := validation.Check("location", location, "required,uri"); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *GetDiagnosticsRequest) Retries() *int {
	return r.retries
}

func (r *GetDiagnosticsRequest) SetRetries(retries int) error {
	if err := validation.Check("retries", retries, retryRules); err != nil {
		return err
	}
	r.retries = &retries
	return nil
}

func (r *GetDiagnosticsRequest) RetryInterval() *int {
	return r.retryInterval
}

func (r *GetDiagnosticsRequest) SetRetryInterval(retryInterval int) error {
	if err := validation.Check("retryInterval", retryInterval, retryRules); err != nil {
		return err
	}
	r.retryInterval = &retryInterval
	return nil
}

func (r *GetDiagnosticsRequest) StartTime() *types.DateTime {
	return r.startTime
}

func (r *GetDiagnosticsRequest) SetStartTime(startTime time.Time) {
	r.startTime = types.NewDateTime(startTime)
}

func (r *GetDiagnosticsRequest) StopTime() *types.DateTime {
	return r.stopTime
}

func (r *GetDiagnosticsRequest) SetStopTime(stopTime time.Time) {
	r.stopTime = types.NewDateTime(stopTime)
}

func (r *GetDiagnosticsRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("location", r.location != "")
	c.Optional("startTime", r.startTime)
	c.Optional("stopTime", r.stopTime)
	if r.startTime.IsSet() && r.stopTime.IsSet() {
		c.Rule("stopTime", !r.stopTime.Before(r.startTime.Time), r.stopTime.String(), "gtefield=startTime")
	}
	return c.Result()
}

func (r *GetDiagnosticsRequest) Validate() bool {
	return validation.Valid(r)
}

func (r GetDiagnosticsRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(getDiagnosticsRequestJSON{
		Location:      r.location,
		Retries:       r.retries,
		RetryInterval: r.retryInterval,
		StartTime:     r.startTime,
		StopTime:      r.stopTime,
	})
}

func (r *GetDiagnosticsRequest) UnmarshalJSON(data []byte) error {
	var raw getDiagnosticsRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := GetDiagnosticsRequest{startTime: raw.StartTime, stopTime: raw.StopTime}
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

type GetDiagnosticsResponse struct {
	fileName string
}

type getDiagnosticsResponseJSON struct {
	FileName string `json:"fileName,omitempty"`
}

func NewGetDiagnosticsResponse() *GetDiagnosticsResponse {
	return &GetDiagnosticsResponse{}
}

func (c *GetDiagnosticsResponse) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

// FileName is empty when no diagnostics are available.
func (c *GetDiagnosticsResponse) FileName() string {
	return c.fileName
}

func (c *GetDiagnosticsResponse) SetFileName(fileName string) error {
	if err := validation.Check("fileName", fileName, "max=255"); err != nil {
		return err
	}
	c.fileName = fileName
	return nil
}

func (c *GetDiagnosticsResponse) Violations() validation.Errors {
	return nil
}

func (c *GetDiagnosticsResponse) Validate() bool {
	return validation.Valid(c)
}

func (c GetDiagnosticsResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(getDiagnosticsResponseJSON{FileName: c.fileName})
}

func (c *GetDiagnosticsResponse) UnmarshalJSON(data []byte) error {
	var raw getDiagnosticsResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response GetDiagnosticsResponse
	if err := response.SetFileName(raw.FileName); err != nil {
		return err
	}
	*c = response
	return nil
}

type GetDiagnosticsFeature struct{}

func (f GetDiagnosticsFeature) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

func (f GetDiagnosticsFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetDiagnosticsRequest{})
}

func (f GetDiagnosticsFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetDiagnosticsResponse{})
}
