package types

import (
	"encoding/json"
	"time"

	"ocpp16/validation"
)

const SubProtocol16 = "ocpp1.6"

type AuthorizationStatus string

const (
	AuthorizationStatusAccepted     AuthorizationStatus = "Accepted"
	AuthorizationStatusBlocked      AuthorizationStatus = "Blocked"
	AuthorizationStatusExpired      AuthorizationStatus = "Expired"
	AuthorizationStatusInvalid      AuthorizationStatus = "Invalid"
	AuthorizationStatusConcurrentTx AuthorizationStatus = "ConcurrentTx"
)

func init() {
	validation.RegisterEnum("authorizationStatus",
		string(AuthorizationStatusAccepted),
		string(AuthorizationStatusBlocked),
		string(AuthorizationStatusExpired),
		string(AuthorizationStatusInvalid),
		string(AuthorizationStatusConcurrentTx))
}

// IdTagInfo contains status information about an identifier.
type IdTagInfo struct {
	expiryDate  *DateTime
	parentIdTag *IdToken
	status      AuthorizationStatus
}

type idTagInfoJSON struct {
	ExpiryDate  *DateTime           `json:"expiryDate,omitempty"`
	ParentIdTag *IdToken            `json:"parentIdTag,omitempty"`
	Status      AuthorizationStatus `json:"status,omitempty"`
}

func NewIdTagInfo(status AuthorizationStatus) (*IdTagInfo, error) {
	info := &IdTagInfo{}
	if err := info.SetStatus(status); err != nil {
		return nil, err
	}
	return info, nil
}

func (i *IdTagInfo) ExpiryDate() *DateTime {
	return i.expiryDate
}

func (i *IdTagInfo) SetExpiryDate(expiryDate time.Time) {
	i.expiryDate = NewDateTime(expiryDate)
}

func (i *IdTagInfo) ParentIdTag() *IdToken {
	return i.parentIdTag
}

func (i *IdTagInfo) SetParentIdTag(parentIdTag *IdToken) {
	i.parentIdTag = parentIdTag
}

func (i *IdTagInfo) Status() AuthorizationStatus {
	return i.status
}

func (i *IdTagInfo) SetStatus(status AuthorizationStatus) error {
	if err := validation.Check("status", status, "authorizationStatus"); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *IdTagInfo) Violations() validation.Errors {
	var c validation.Collector
	c.Require("status", i.status != "")
	c.Optional("parentIdTag", i.parentIdTag)
	c.Optional("expiryDate", i.expiryDate)
	return c.Result()
}

func (i *IdTagInfo) Validate() bool {
	return validation.Valid(i)
}

func (i IdTagInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(idTagInfoJSON{
		ExpiryDate:  i.expiryDate,
		ParentIdTag: i.parentIdTag,
		Status:      i.status,
	})
}

func (i *IdTagInfo) UnmarshalJSON(data []byte) error {
	var raw idTagInfoJSON
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	info := IdTagInfo{expiryDate: raw.ExpiryDate, parentIdTag: raw.ParentIdTag}
	if raw.Status != "" {
		if err := info.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*i = info
	return nil
}
