package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const AuthorizeFeatureName = "Authorize"

type AuthorizeRequest struct {
	idTag *types.IdToken
}

type authorizeRequestJSON struct {
	IdTag *types.IdToken `json:"idTag,omitempty"`
}

func NewAuthorizeRequest(idTag *types.IdToken) *AuthorizeRequest {
	return &AuthorizeRequest{idTag: idTag}
}

func (r *AuthorizeRequest) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (r *AuthorizeRequest) IdTag() *types.IdToken {
	return r.idTag
}

func (r *AuthorizeRequest) SetIdTag(idTag *types.IdToken) {
	r.idTag = idTag
}

func (r *AuthorizeRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Nested("idTag", r.idTag)
	return c.Result()
}

func (r *AuthorizeRequest) Validate() bool {
	return validation.Valid(r)
}

func (r AuthorizeRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(authorizeRequestJSON{IdTag: r.idTag})
}

func (r *AuthorizeRequest) UnmarshalJSON(data []byte) error {
	var raw authorizeRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = AuthorizeRequest{idTag: raw.IdTag}
	return nil
}

type AuthorizeResponse struct {
	idTagInfo *types.IdTagInfo
}

type authorizeResponseJSON struct {
	IdTagInfo *types.IdTagInfo `json:"idTagInfo,omitempty"`
}

func NewAuthorizeResponse(idTagInfo *types.IdTagInfo) *AuthorizeResponse {
	return &AuthorizeResponse{idTagInfo: idTagInfo}
}

func (c *AuthorizeResponse) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (c *AuthorizeResponse) IdTagInfo() *types.IdTagInfo {
	return c.idTagInfo
}

func (c *AuthorizeResponse) SetIdTagInfo(idTagInfo *types.IdTagInfo) {
	c.idTagInfo = idTagInfo
}

func (c *AuthorizeResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Nested("idTagInfo", c.idTagInfo)
	return v.Result()
}

func (c *AuthorizeResponse) Validate() bool {
	return validation.Valid(c)
}

func (c AuthorizeResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(authorizeResponseJSON{IdTagInfo: c.idTagInfo})
}

func (c *AuthorizeResponse) UnmarshalJSON(data []byte) error {
	var raw authorizeResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = AuthorizeResponse{idTagInfo: raw.IdTagInfo}
	return nil
}

type AuthorizeFeature struct{}

func (f AuthorizeFeature) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (f AuthorizeFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(AuthorizeRequest{})
}

func (f AuthorizeFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(AuthorizeResponse{})
}
