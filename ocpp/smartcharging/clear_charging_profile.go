package smartcharging

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const ClearChargingProfileFeatureName = "ClearChargingProfile"

type ClearChargingProfileStatus string

const (
	ClearChargingProfileStatusAccepted ClearChargingProfileStatus = "Accepted"
	ClearChargingProfileStatusUnknown  ClearChargingProfileStatus = "Unknown"
)

func init() {
	validation.RegisterEnum("clearChargingProfileStatus",
		string(ClearChargingProfileStatusAccepted),
		string(ClearChargingProfileStatusUnknown))
}

// ClearChargingProfileRequest removes the profiles matching every criterion that is set.
// With no criteria at all every profile is cleared.
type ClearChargingProfileRequest struct {
	id                     *int
	connectorId            *int
	chargingProfilePurpose types.ChargingProfilePurposeType
	stackLevel             *int
}

type clearChargingProfileRequestJSON struct {
	Id                     *int                             `json:"id,omitempty"`
	ConnectorId            *int                             `json:"connectorId,omitempty"`
	ChargingProfilePurpose types.ChargingProfilePurposeType `json:"chargingProfilePurpose,omitempty"`
	StackLevel             *int                             `json:"stackLevel,omitempty"`
}

func NewClearChargingProfileRequest() *ClearChargingProfileRequest {
	return &ClearChargingProfileRequest{}
}

// NewClearDefaultChargingProfileRequest targets the profile installed by NewDefaultChargingProfile.
func NewClearDefaultChargingProfileRequest() *ClearChargingProfileRequest {
	id := defaultProfileId
	stackLevel := defaultStackLevel
	return &ClearChargingProfileRequest{
		id:                     &id,
		stackLevel:             &stackLevel,
		chargingProfilePurpose: types.ChargingProfilePurposeTxDefaultProfile,
	}
}

func (r *ClearChargingProfileRequest) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (r *ClearChargingProfileRequest) Id() *int {
	return r.id
}

func (r *ClearChargingProfileRequest) SetId(id int) {
	r.id = &id
}

func (r *ClearChargingProfileRequest) ConnectorId() *int {
	return r.connectorId
}

func (r *ClearChargingProfileRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *ClearChargingProfileRequest) ChargingProfilePurpose() types.ChargingProfilePurposeType {
	return r.chargingProfilePurpose
}

func (r *ClearChargingProfileRequest) SetChargingProfilePurpose(purpose types.ChargingProfilePurposeType) error {
	if err := validation.Check("chargingProfilePurpose", purpose, "chargingProfilePurpose"); err != nil {
		return err
	}
	r.chargingProfilePurpose = purpose
	return nil
}

func (r *ClearChargingProfileRequest) StackLevel() *int {
	return r.stackLevel
}

func (r *ClearChargingProfileRequest) SetStackLevel(stackLevel int) error {
	if err := validation.Check("stackLevel", stackLevel, "gte=0"); err != nil {
		return err
	}
	r.stackLevel = &stackLevel
	return nil
}

func (r *ClearChargingProfileRequest) Violations() validation.Errors {
	return nil
}

func (r *ClearChargingProfileRequest) Validate() bool {
	return validation.Valid(r)
}

func (r ClearChargingProfileRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(clearChargingProfileRequestJSON{
		Id:                     r.id,
		ConnectorId:            r.connectorId,
		ChargingProfilePurpose: r.chargingProfilePurpose,
		StackLevel:             r.stackLevel,
	})
}

func (r *ClearChargingProfileRequest) UnmarshalJSON(data []byte) error {
	var raw clearChargingProfileRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := ClearChargingProfileRequest{id: raw.Id}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	if raw.ChargingProfilePurpose != "" {
		if err := request.SetChargingProfilePurpose(raw.ChargingProfilePurpose); err != nil {
			return err
		}
	}
	if raw.StackLevel != nil {
		if err := request.SetStackLevel(*raw.StackLevel); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type ClearChargingProfileResponse struct {
	status ClearChargingProfileStatus
}

type clearChargingProfileResponseJSON struct {
	Status ClearChargingProfileStatus `json:"status,omitempty"`
}

func NewClearChargingProfileResponse(status ClearChargingProfileStatus) (*ClearChargingProfileResponse, error) {
	response := &ClearChargingProfileResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ClearChargingProfileResponse) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (c *ClearChargingProfileResponse) Status() ClearChargingProfileStatus {
	return c.status
}

func (c *ClearChargingProfileResponse) SetStatus(status ClearChargingProfileStatus) error {
	if err := validation.Check("status", status, "clearChargingProfileStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ClearChargingProfileResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ClearChargingProfileResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ClearChargingProfileResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(clearChargingProfileResponseJSON{Status: c.status})
}

func (c *ClearChargingProfileResponse) UnmarshalJSON(data []byte) error {
	var raw clearChargingProfileResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ClearChargingProfileResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ClearChargingProfileFeature struct{}

func (f ClearChargingProfileFeature) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (f ClearChargingProfileFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ClearChargingProfileRequest{})
}

func (f ClearChargingProfileFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ClearChargingProfileResponse{})
}
