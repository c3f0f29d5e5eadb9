package localauth

import (
	"encoding/json"
	"fmt"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const SendLocalListFeatureName = "SendLocalList"

type UpdateType string

type UpdateStatus string

const (
	UpdateTypeDifferential      UpdateType   = "Differential"
	UpdateTypeFull              UpdateType   = "Full"
	UpdateStatusAccepted        UpdateStatus = "Accepted"
	UpdateStatusFailed          UpdateStatus = "Failed"
	UpdateStatusNotSupported    UpdateStatus = "NotSupported"
	UpdateStatusVersionMismatch UpdateStatus = "VersionMismatch"
)

func init() {
	validation.RegisterEnum("updateType", string(UpdateTypeDifferential), string(UpdateTypeFull))
	validation.RegisterEnum("updateStatus",
		string(UpdateStatusAccepted),
		string(UpdateStatusFailed),
		string(UpdateStatusNotSupported),
		string(UpdateStatusVersionMismatch))
}

// AuthorizationData is one entry of the local authorization list. Without idTagInfo a
// differential update removes the entry.
type AuthorizationData struct {
	idTag     *types.IdToken
	idTagInfo *types.IdTagInfo
}

type authorizationDataJSON struct {
	IdTag     *types.IdToken   `json:"idTag,omitempty"`
	IdTagInfo *types.IdTagInfo `json:"idTagInfo,omitempty"`
}

func NewAuthorizationData(idTag *types.IdToken, idTagInfo *types.IdTagInfo) *AuthorizationData {
	return &AuthorizationData{idTag: idTag, idTagInfo: idTagInfo}
}

func (d *AuthorizationData) IdTag() *types.IdToken {
	return d.idTag
}

func (d *AuthorizationData) SetIdTag(idTag *types.IdToken) {
	d.idTag = idTag
}

func (d *AuthorizationData) IdTagInfo() *types.IdTagInfo {
	return d.idTagInfo
}

func (d *AuthorizationData) SetIdTagInfo(idTagInfo *types.IdTagInfo) {
	d.idTagInfo = idTagInfo
}

func (d *AuthorizationData) Violations() validation.Errors {
	var c validation.Collector
	c.Nested("idTag", d.idTag)
	c.Optional("idTagInfo", d.idTagInfo)
	return c.Result()
}

func (d *AuthorizationData) Validate() bool {
	return validation.Valid(d)
}

func (d AuthorizationData) MarshalJSON() ([]byte, error) {
	return json.Marshal(authorizationDataJSON{IdTag: d.idTag, IdTagInfo: d.idTagInfo})
}

func (d *AuthorizationData) UnmarshalJSON(data []byte) error {
	var raw authorizationDataJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = AuthorizationData{idTag: raw.IdTag, idTagInfo: raw.IdTagInfo}
	return nil
}

type SendLocalListRequest struct {
	listVersion            *int
	localAuthorizationList []*AuthorizationData
	updateType             UpdateType
}

type sendLocalListRequestJSON struct {
	ListVersion            *int                 `json:"listVersion,omitempty"`
	LocalAuthorizationList []*AuthorizationData `json:"localAuthorizationList,omitempty"`
	UpdateType             UpdateType           `json:"updateType,omitempty"`
}

// NewSendLocalListRequest creates SendLocalListRequest containing all required field. Optional fields may be set afterward.
func NewSendLocalListRequest(version int, updateType UpdateType) (*SendLocalListRequest, error) {
	request := &SendLocalListRequest{}
	if err := request.SetListVersion(version); err != nil {
		return nil, err
	}
	if err := request.SetUpdateType(updateType); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *SendLocalListRequest) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (r *SendLocalListRequest) ListVersion() int {
	if r.listVersion == nil {
		return 0
	}
	return *r.listVersion
}

func (r *SendLocalListRequest) SetListVersion(listVersion int) error {
	if err := validation.Check("listVersion", listVersion, "gte=0"); err != nil {
		return err
	}
	r.listVersion = &listVersion
	return nil
}

func (r *SendLocalListRequest) LocalAuthorizationList() []*AuthorizationData {
	return r.localAuthorizationList
}

func (r *SendLocalListRequest) SetLocalAuthorizationList(list []*AuthorizationData) {
	r.localAuthorizationList = list
}

func (r *SendLocalListRequest) UpdateType() UpdateType {
	return r.updateType
}

func (r *SendLocalListRequest) SetUpdateType(updateType UpdateType) error {
	if err := validation.Check("updateType", updateType, "updateType"); err != nil {
		return err
	}
	r.updateType = updateType
	return nil
}

func (r *SendLocalListRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("listVersion", r.listVersion != nil)
	c.Require("updateType", r.updateType != "")
	validation.Each(&c, "localAuthorizationList", r.localAuthorizationList)
	if r.updateType == UpdateTypeFull {
		for i, data := range r.localAuthorizationList {
			if data == nil {
				continue
			}
			c.Rule(fmt.Sprintf("localAuthorizationList[%d].idTagInfo", i), data.idTagInfo != nil, nil, "required_if=updateType Full")
		}
	}
	return c.Result()
}

func (r *SendLocalListRequest) Validate() bool {
	return validation.Valid(r)
}

func (r SendLocalListRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(sendLocalListRequestJSON{
		ListVersion:            r.listVersion,
		LocalAuthorizationList: r.localAuthorizationList,
		UpdateType:             r.updateType,
	})
}

func (r *SendLocalListRequest) UnmarshalJSON(data []byte) error {
	var raw sendLocalListRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := SendLocalListRequest{localAuthorizationList: raw.LocalAuthorizationList}
	if raw.ListVersion != nil {
		if err := request.SetListVersion(*raw.ListVersion); err != nil {
			return err
		}
	}
	if raw.UpdateType != "" {
		if err := request.SetUpdateType(raw.UpdateType); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type SendLocalListResponse struct {
	status UpdateStatus
}

type sendLocalListResponseJSON struct {
	Status UpdateStatus `json:"status,omitempty"`
}

// NewSendLocalListResponse Creates a new SendLocalListResponse, containing all required fields. There are no optional fields for this message.
func NewSendLocalListResponse(status UpdateStatus) (*SendLocalListResponse, error) {
	response := &SendLocalListResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *SendLocalListResponse) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (c *SendLocalListResponse) Status() UpdateStatus {
	return c.status
}

func (c *SendLocalListResponse) SetStatus(status UpdateStatus) error {
	if err := validation.Check("status", status, "updateStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SendLocalListResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *SendLocalListResponse) Validate() bool {
	return validation.Valid(c)
}

func (c SendLocalListResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(sendLocalListResponseJSON{Status: c.status})
}

func (c *SendLocalListResponse) UnmarshalJSON(data []byte) error {
	var raw sendLocalListResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response SendLocalListResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type SendLocalListFeature struct{}

func (f SendLocalListFeature) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (f SendLocalListFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(SendLocalListRequest{})
}

func (f SendLocalListFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(SendLocalListResponse{})
}
