package reservation

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const CancelReservationFeatureName = "CancelReservation"

type CancelReservationStatus string

const (
	CancelReservationStatusAccepted CancelReservationStatus = "Accepted"
	CancelReservationStatusRejected CancelReservationStatus = "Rejected"
)

func init() {
	validation.RegisterEnum("cancelReservationStatus",
		string(CancelReservationStatusAccepted),
		string(CancelReservationStatusRejected))
}

type CancelReservationRequest struct {
	reservationId *int
}

type cancelReservationRequestJSON struct {
	ReservationId *int `json:"reservationId,omitempty"`
}

func NewCancelReservationRequest(reservationId int) *CancelReservationRequest {
	return &CancelReservationRequest{reservationId: &reservationId}
}

func (r *CancelReservationRequest) GetFeatureName() string {
	return CancelReservationFeatureName
}

func (r *CancelReservationRequest) ReservationId() int {
	if r.reservationId == nil {
		return 0
	}
	return *r.reservationId
}

func (r *CancelReservationRequest) SetReservationId(reservationId int) {
	r.reservationId = &reservationId
}

func (r *CancelReservationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("reservationId", r.reservationId != nil)
	return c.Result()
}

func (r *CancelReservationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r CancelReservationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(cancelReservationRequestJSON{ReservationId: r.reservationId})
}

func (r *CancelReservationRequest) UnmarshalJSON(data []byte) error {
	var raw cancelReservationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = CancelReservationRequest{reservationId: raw.ReservationId}
	return nil
}

type CancelReservationResponse struct {
	status CancelReservationStatus
}

type cancelReservationResponseJSON struct {
	Status CancelReservationStatus `json:"status,omitempty"`
}

func NewCancelReservationResponse(status CancelReservationStatus) (*CancelReservationResponse, error) {
	response := &CancelReservationResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *CancelReservationResponse) GetFeatureName() string {
	return CancelReservationFeatureName
}

func (c *CancelReservationResponse) Status() CancelReservationStatus {
	return c.status
}

func (c *CancelReservationResponse) SetStatus(status CancelReservationStatus) error {
	if err := validation.Check("status", status, "cancelReservationStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CancelReservationResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *CancelReservationResponse) Validate() bool {
	return validation.Valid(c)
}

func (c CancelReservationResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(cancelReservationResponseJSON{Status: c.status})
}

func (c *CancelReservationResponse) UnmarshalJSON(data []byte) error {
	var raw cancelReservationResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response CancelReservationResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type CancelReservationFeature struct{}

func (f CancelReservationFeature) GetFeatureName() string {
	return CancelReservationFeatureName
}

func (f CancelReservationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(CancelReservationRequest{})
}

func (f CancelReservationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(CancelReservationResponse{})
}
