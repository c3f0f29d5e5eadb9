package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const ChangeAvailabilityFeatureName = "ChangeAvailability"

type AvailabilityType string

type AvailabilityStatus string

const (
	AvailabilityTypeOperative   AvailabilityType   = "Operative"
	AvailabilityTypeInoperative AvailabilityType   = "Inoperative"
	AvailabilityStatusAccepted  AvailabilityStatus = "Accepted"
	AvailabilityStatusRejected  AvailabilityStatus = "Rejected"
	AvailabilityStatusScheduled AvailabilityStatus = "Scheduled"
)

func init() {
	validation.RegisterEnum("availabilityType",
		string(AvailabilityTypeOperative),
		string(AvailabilityTypeInoperative))
	validation.RegisterEnum("availabilityStatus",
		string(AvailabilityStatusAccepted),
		string(AvailabilityStatusRejected),
		string(AvailabilityStatusScheduled))
}

// ChangeAvailabilityRequest asks a charge point to change the availability of a connector,
// connector 0 addresses the whole charge point.
type ChangeAvailabilityRequest struct {
	connectorId      *int
	availabilityType AvailabilityType
}

type changeAvailabilityRequestJSON struct {
	ConnectorId *int             `json:"connectorId,omitempty"`
	Type        AvailabilityType `json:"type,omitempty"`
}

func NewChangeAvailabilityRequest(connectorId int, availabilityType AvailabilityType) (*ChangeAvailabilityRequest, error) {
	request := &ChangeAvailabilityRequest{}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	if err := request.SetType(availabilityType); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *ChangeAvailabilityRequest) GetFeatureName() string {
	return ChangeAvailabilityFeatureName
}

func (r *ChangeAvailabilityRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *ChangeAvailabilityRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *ChangeAvailabilityRequest) Type() AvailabilityType {
	return r.availabilityType
}

func (r *ChangeAvailabilityRequest) SetType(availabilityType AvailabilityType) error {
	if err := validation.Check("type", availabilityType, "availabilityType"); err != nil {
		return err
	}
	r.availabilityType = availabilityType
	return nil
}

func (r *ChangeAvailabilityRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Require("type", r.availabilityType != "")
	return c.Result()
}

func (r *ChangeAvailabilityRequest) Validate() bool {
	return validation.Valid(r)
}

func (r ChangeAvailabilityRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeAvailabilityRequestJSON{ConnectorId: r.connectorId, Type: r.availabilityType})
}

func (r *ChangeAvailabilityRequest) UnmarshalJSON(data []byte) error {
	var raw changeAvailabilityRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request ChangeAvailabilityRequest
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	if raw.Type != "" {
		if err := request.SetType(raw.Type); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type ChangeAvailabilityResponse struct {
	status AvailabilityStatus
}

type changeAvailabilityResponseJSON struct {
	Status AvailabilityStatus `json:"status,omitempty"`
}

func NewChangeAvailabilityResponse(status AvailabilityStatus) (*ChangeAvailabilityResponse, error) {
	response := &ChangeAvailabilityResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ChangeAvailabilityResponse) GetFeatureName() string {
	return ChangeAvailabilityFeatureName
}

func (c *ChangeAvailabilityResponse) Status() AvailabilityStatus {
	return c.status
}

func (c *ChangeAvailabilityResponse) SetStatus(status AvailabilityStatus) error {
	if err := validation.Check("status", status, "availabilityStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeAvailabilityResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ChangeAvailabilityResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ChangeAvailabilityResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeAvailabilityResponseJSON{Status: c.status})
}

func (c *ChangeAvailabilityResponse) UnmarshalJSON(data []byte) error {
	var raw changeAvailabilityResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ChangeAvailabilityResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ChangeAvailabilityFeature struct{}

func (f ChangeAvailabilityFeature) GetFeatureName() string {
	return ChangeAvailabilityFeatureName
}

func (f ChangeAvailabilityFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ChangeAvailabilityRequest{})
}

func (f ChangeAvailabilityFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ChangeAvailabilityResponse{})
}
