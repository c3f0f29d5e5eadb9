package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const RemoteStartTransactionFeatureName = "RemoteStartTransaction"

type RemoteStartStopStatus string

const (
	RemoteStartStopStatusAccepted RemoteStartStopStatus = "Accepted"
	RemoteStartStopStatusRejected RemoteStartStopStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("remoteStartStopStatus",
		string(RemoteStartStopStatusAccepted),
		string(RemoteStartStopStatusRejected))
}

// RemoteStartTransactionRequest asks a charge point to start a transaction for idTag.
// A charging profile sent along must be a TxProfile.
type RemoteStartTransactionRequest struct {
	connectorId     *int
	idTag           *types.IdToken
	chargingProfile *types.ChargingProfile
}

type remoteStartTransactionRequestJSON struct {
	ConnectorId     *int                   `json:"connectorId,omitempty"`
	IdTag           *types.IdToken         `json:"idTag,omitempty"`
	ChargingProfile *types.ChargingProfile `json:"chargingProfile,omitempty"`
}

func NewRemoteStartTransactionRequest(idTag *types.IdToken) *RemoteStartTransactionRequest {
	return &RemoteStartTransactionRequest{idTag: idTag}
}

func (r *RemoteStartTransactionRequest) GetFeatureName() string {
	return RemoteStartTransactionFeatureName
}

func (r *RemoteStartTransactionRequest) ConnectorId() *int {
	return r.connectorId
}

func (r *RemoteStartTransactionRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gt=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *RemoteStartTransactionRequest) IdTag() *types.IdToken {
	return r.idTag
}

func (r *RemoteStartTransactionRequest) SetIdTag(idTag *types.IdToken) {
	r.idTag = idTag
}

func (r *RemoteStartTransactionRequest) ChargingProfile() *types.ChargingProfile {
	return r.chargingProfile
}

func (r *RemoteStartTransactionRequest) SetChargingProfile(chargingProfile *types.ChargingProfile) {
	r.chargingProfile = chargingProfile
}

func (r *RemoteStartTransactionRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Nested("idTag", r.idTag)
	c.Optional("chargingProfile", r.chargingProfile)
	if r.chargingProfile != nil && r.chargingProfile.ChargingProfilePurpose() != "" {
		purpose := r.chargingProfile.ChargingProfilePurpose()
		c.Rule("chargingProfile.chargingProfilePurpose", purpose == types.ChargingProfilePurposeTxProfile, purpose, "eq="+string(types.ChargingProfilePurposeTxProfile))
	}
	return c.Result()
}

func (r *RemoteStartTransactionRequest) Validate() bool {
	return validation.Valid(r)
}

func (r RemoteStartTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(remoteStartTransactionRequestJSON{ConnectorId: r.connectorId, IdTag: r.idTag, ChargingProfile: r.chargingProfile})
}

func (r *RemoteStartTransactionRequest) UnmarshalJSON(data []byte) error {
	var raw remoteStartTransactionRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := RemoteStartTransactionRequest{idTag: raw.IdTag, chargingProfile: raw.ChargingProfile}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type RemoteStartTransactionResponse struct {
	status RemoteStartStopStatus
}

type remoteStartStopResponseJSON struct {
	Status RemoteStartStopStatus `json:"status,omitempty"`
}

func NewRemoteStartTransactionResponse(status RemoteStartStopStatus) (*RemoteStartTransactionResponse, error) {
	response := &RemoteStartTransactionResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *RemoteStartTransactionResponse) GetFeatureName() string {
	return RemoteStartTransactionFeatureName
}

func (c *RemoteStartTransactionResponse) Status() RemoteStartStopStatus {
	return c.status
}

func (c *RemoteStartTransactionResponse) SetStatus(status RemoteStartStopStatus) error {
	if err := validation.Check("status", status, "remoteStartStopStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *RemoteStartTransactionResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *RemoteStartTransactionResponse) Validate() bool {
	return validation.Valid(c)
}

func (c RemoteStartTransactionResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(remoteStartStopResponseJSON{Status: c.status})
}

func (c *RemoteStartTransactionResponse) UnmarshalJSON(data []byte) error {
	var raw remoteStartStopResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response RemoteStartTransactionResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type RemoteStartTransactionFeature struct{}

func (f RemoteStartTransactionFeature) GetFeatureName() string {
	return RemoteStartTransactionFeatureName
}

func (f RemoteStartTransactionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(RemoteStartTransactionRequest{})
}

func (f RemoteStartTransactionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(RemoteStartTransactionResponse{})
}
