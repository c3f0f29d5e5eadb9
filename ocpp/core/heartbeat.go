package core

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const HeartbeatFeatureName = "Heartbeat"

type HeartbeatRequest struct{}

func NewHeartbeatRequest() *HeartbeatRequest {
	return &HeartbeatRequest{}
}

func (r *HeartbeatRequest) GetFeatureName() string {
	return HeartbeatFeatureName
}

func (r *HeartbeatRequest) Violations() validation.Errors {
	return nil
}

func (r *HeartbeatRequest) Validate() bool {
	return true
}

func (r HeartbeatRequest) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (r *HeartbeatRequest) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type HeartbeatResponse struct {
	currentTime *types.DateTime
}

type heartbeatResponseJSON struct {
	CurrentTime *types.DateTime `json:"currentTime,omitempty"`
}

func NewHeartbeatResponse(currentTime time.Time) *HeartbeatResponse {
	return &HeartbeatResponse{currentTime: types.NewDateTime(currentTime)}
}

func (c *HeartbeatResponse) GetFeatureName() string {
	return HeartbeatFeatureName
}

func (c *HeartbeatResponse) CurrentTime() *types.DateTime {
	return c.currentTime
}

func (c *HeartbeatResponse) SetCurrentTime(currentTime time.Time) {
	c.currentTime = types.NewDateTime(currentTime)
}

func (c *HeartbeatResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("currentTime", c.currentTime.IsSet())
	v.Optional("currentTime", c.currentTime)
	return v.Result()
}

func (c *HeartbeatResponse) Validate() bool {
	return validation.Valid(c)
}

func (c HeartbeatResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(heartbeatResponseJSON{CurrentTime: c.currentTime})
}

func (c *HeartbeatResponse) UnmarshalJSON(data []byte) error {
	var raw heartbeatResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = HeartbeatResponse{currentTime: raw.CurrentTime}
	return nil
}

type HeartbeatFeature struct{}

func (f HeartbeatFeature) GetFeatureName() string {
	return HeartbeatFeatureName
}

func (f HeartbeatFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(HeartbeatRequest{})
}

func (f HeartbeatFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(HeartbeatResponse{})
}
