package smartcharging

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const SetChargingProfileFeatureName = "SetChargingProfile"

type ChargingProfileStatus string

const (
	ChargingProfileStatusAccepted     ChargingProfileStatus = "Accepted"
	ChargingProfileStatusRejected     ChargingProfileStatus = "Rejected"
	ChargingProfileStatusNotSupported ChargingProfileStatus = "NotSupported"
)

func init() {
	validation.RegisterEnum("chargingProfileStatus",
		string(ChargingProfileStatusAccepted),
		string(ChargingProfileStatusRejected),
		string(ChargingProfileStatusNotSupported))
}

// SetChargingProfileRequest installs a charging profile on a connector, connector 0 applies
// it to the whole charge point.
type SetChargingProfileRequest struct {
	connectorId     *int
	chargingProfile *types.ChargingProfile
}

type setChargingProfileRequestJSON struct {
	ConnectorId     *int                   `json:"connectorId,omitempty"`
	ChargingProfile *types.ChargingProfile `json:"csChargingProfiles,omitempty"`
}

func NewSetChargingProfileRequest(connectorId int, chargingProfile *types.ChargingProfile) (*SetChargingProfileRequest, error) {
	request := &SetChargingProfileRequest{chargingProfile: chargingProfile}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *SetChargingProfileRequest) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (r *SetChargingProfileRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *SetChargingProfileRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

// ChargingProfile is sent on the wire as csChargingProfiles.
func (r *SetChargingProfileRequest) ChargingProfile() *types.ChargingProfile {
	return r.chargingProfile
}

func (r *SetChargingProfileRequest) SetChargingProfile(chargingProfile *types.ChargingProfile) {
	r.chargingProfile = chargingProfile
}

func (r *SetChargingProfileRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Nested("csChargingProfiles", r.chargingProfile)
	return c.Result()
}

func (r *SetChargingProfileRequest) Validate() bool {
	return validation.Valid(r)
}

func (r SetChargingProfileRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(setChargingProfileRequestJSON{ConnectorId: r.connectorId, ChargingProfile: r.chargingProfile})
}

func (r *SetChargingProfileRequest) UnmarshalJSON(data []byte) error {
	var raw setChargingProfileRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := SetChargingProfileRequest{chargingProfile: raw.ChargingProfile}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type SetChargingProfileResponse struct {
	status ChargingProfileStatus
}

type setChargingProfileResponseJSON struct {
	Status ChargingProfileStatus `json:"status,omitempty"`
}

func NewSetChargingProfileResponse(status ChargingProfileStatus) (*SetChargingProfileResponse, error) {
	response := &SetChargingProfileResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *SetChargingProfileResponse) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (c *SetChargingProfileResponse) Status() ChargingProfileStatus {
	return c.status
}

func (c *SetChargingProfileResponse) SetStatus(status ChargingProfileStatus) error {
	if err := validation.Check("status", status, "chargingProfileStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetChargingProfileResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *SetChargingProfileResponse) Validate() bool {
	return validation.Valid(c)
}

func (c SetChargingProfileResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(setChargingProfileResponseJSON{Status: c.status})
}

func (c *SetChargingProfileResponse) UnmarshalJSON(data []byte) error {
	var raw setChargingProfileResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response SetChargingProfileResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type SetChargingProfileFeature struct{}

func (f SetChargingProfileFeature) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (f SetChargingProfileFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(SetChargingProfileRequest{})
}

func (f SetChargingProfileFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(SetChargingProfileResponse{})
}
