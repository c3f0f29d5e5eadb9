package reservation

import (
	"encoding/json"
	"reflect"
	"time"

	"ocpp16/types"
	"ocpp16/validation"
)

const ReserveNowFeatureName = "ReserveNow"

type ReservationStatus string

const (
	ReservationStatusAccepted    ReservationStatus = "Accepted"
	ReservationStatusFaulted     ReservationStatus = "Faulted"
	ReservationStatusOccupied    ReservationStatus = "Occupied"
	ReservationStatusRejected    ReservationStatus = "Rejected"
	ReservationStatusUnavailable ReservationStatus = "Unavailable"
)

func init() {
	validation.RegisterEnum("reservationStatus",
		string(ReservationStatusAccepted),
		string(ReservationStatusFaulted),
		string(ReservationStatusOccupied),
		string(ReservationStatusRejected),
		string(ReservationStatusUnavailable))
}

// ReserveNowRequest reserves a connector for idTag until expiryDate. Connector 0 reserves
// any connector of the charge point.
type ReserveNowRequest struct {
	connectorId   *int
	expiryDate    *types.DateTime
	idTag         *types.IdToken
	parentIdTag   *types.IdToken
	reservationId *int
}

type reserveNowRequestJSON struct {
	ConnectorId   *int            `json:"connectorId,omitempty"`
	ExpiryDate    *types.DateTime `json:"expiryDate,omitempty"`
	IdTag         *types.IdToken  `json:"idTag,omitempty"`
	ParentIdTag   *types.IdToken  `json:"parentIdTag,omitempty"`
	ReservationId *int            `json:"reservationId,omitempty"`
}

func NewReserveNowRequest(connectorId int, expiryDate time.Time, idTag *types.IdToken, reservationId int) (*ReserveNowRequest, error) {
	request := &ReserveNowRequest{
		expiryDate:    types.NewDateTime(expiryDate),
		idTag:         idTag,
		reservationId: &reservationId,
	}
	if err := request.SetConnectorId(connectorId); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *ReserveNowRequest) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (r *ReserveNowRequest) ConnectorId() int {
	if r.connectorId == nil {
		return 0
	}
	return *r.connectorId
}

func (r *ReserveNowRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gte=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *ReserveNowRequest) ExpiryDate() *types.DateTime {
	return r.expiryDate
}

func (r *ReserveNowRequest) SetExpiryDate(expiryDate time.Time) {
	r.expiryDate = types.NewDateTime(expiryDate)
}

func (r *ReserveNowRequest) IdTag() *types.IdToken {
	return r.idTag
}

func (r *ReserveNowRequest) SetIdTag(idTag *types.IdToken) {
	r.idTag = idTag
}

func (r *ReserveNowRequest) ParentIdTag() *types.IdToken {
	return r.parentIdTag
}

func (r *ReserveNowRequest) SetParentIdTag(parentIdTag *types.IdToken) {
	r.parentIdTag = parentIdTag
}

func (r *ReserveNowRequest) ReservationId() int {
	if r.reservationId == nil {
		return 0
	}
	return *r.reservationId
}

func (r *ReserveNowRequest) SetReservationId(reservationId int) {
	r.reservationId = &reservationId
}

func (r *ReserveNowRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("connectorId", r.connectorId != nil)
	c.Require("expiryDate", r.expiryDate.IsSet())
	c.Optional("expiryDate", r.expiryDate)
	c.Nested("idTag", r.idTag)
	c.Optional("parentIdTag", r.parentIdTag)
	c.Require("reservationId", r.reservationId != nil)
	return c.Result()
}

func (r *ReserveNowRequest) Validate() bool {
	return validation.Valid(r)
}

func (r ReserveNowRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(reserveNowRequestJSON{
		ConnectorId:   r.connectorId,
		ExpiryDate:    r.expiryDate,
		IdTag:         r.idTag,
		ParentIdTag:   r.parentIdTag,
		ReservationId: r.reservationId,
	})
}

func (r *ReserveNowRequest) UnmarshalJSON(data []byte) error {
	var raw reserveNowRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := ReserveNowRequest{
		expiryDate:    raw.ExpiryDate,
		idTag:         raw.IdTag,
		parentIdTag:   raw.ParentIdTag,
		reservationId: raw.ReservationId,
	}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type ReserveNowResponse struct {
	status ReservationStatus
}

type reserveNowResponseJSON struct {
	Status ReservationStatus `json:"status,omitempty"`
}

func NewReserveNowResponse(status ReservationStatus) (*ReserveNowResponse, error) {
	response := &ReserveNowResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ReserveNowResponse) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (c *ReserveNowResponse) Status() ReservationStatus {
	return c.status
}

func (c *ReserveNowResponse) SetStatus(status ReservationStatus) error {
	if err := validation.Check("status", status, "reservationStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ReserveNowResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *ReserveNowResponse) Validate() bool {
	return validation.Valid(c)
}

func (c ReserveNowResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(reserveNowResponseJSON{Status: c.status})
}

func (c *ReserveNowResponse) UnmarshalJSON(data []byte) error {
	var raw reserveNowResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response ReserveNowResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type ReserveNowFeature struct{}

func (f ReserveNowFeature) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (f ReserveNowFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ReserveNowRequest{})
}

func (f ReserveNowFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ReserveNowResponse{})
}
