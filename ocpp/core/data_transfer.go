package core

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const DataTransferFeatureName = "DataTransfer"

type DataTransferStatus string

const (
	DataTransferStatusAccepted         DataTransferStatus = "Accepted"
	DataTransferStatusRejected         DataTransferStatus = "Rejected"
	DataTransferStatusUnknownMessageId DataTransferStatus = "UnknownMessageId"
	DataTransferStatusUnknownVendorId  DataTransferStatus = "UnknownVendorId"
)

func init() {
	validation.RegisterEnum("dataTransferStatus",
		string(DataTransferStatusAccepted),
		string(DataTransferStatusRejected),
		string(DataTransferStatusUnknownMessageId),
		string(DataTransferStatusUnknownVendorId))
}

// DataTransferRequest carries vendor specific data, it may be sent in either direction.
type DataTransferRequest struct {
	vendorId  string
	messageId string
	data      string
}

type dataTransferRequestJSON struct {
	VendorId  string `json:"vendorId,omitempty"`
	MessageId string `json:"messageId,omitempty"`
	Data      string `json:"data,omitempty"`
}

func NewDataTransferRequest(vendorId string) (*DataTransferRequest, error) {
	request := &DataTransferRequest{}
	if err := request.SetVendorId(vendorId); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *DataTransferRequest) GetFeatureName() string {
	return DataTransferFeatureName
}

func (r *DataTransferRequest) VendorId() string {
	return r.vendorId
}

func (r *DataTransferRequest) SetVendorId(vendorId string) error {
	return setString(&r.vendorId, "vendorId", vendorId, "required,max=255")
}

func (r *DataTransferRequest) MessageId() string {
	return r.messageId
}

func (r *DataTransferRequest) SetMessageId(messageId string) error {
	return setString(&r.messageId, "messageId", messageId, "max=50")
}

func (r *DataTransferRequest) Data() string {
	return r.data
}

func (r *DataTransferRequest) SetData(data string) {
	r.data = data
}

func (r *DataTransferRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("vendorId", r.vendorId != "")
	return c.Result()
}

func (r *DataTransferRequest) Validate() bool {
	return validation.Valid(r)
}

func (r DataTransferRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataTransferRequestJSON{VendorId: r.vendorId, MessageId: r.messageId, Data: r.data})
}

func (r *DataTransferRequest) UnmarshalJSON(data []byte) error {
	var raw dataTransferRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	request := DataTransferRequest{data: raw.Data}
	if raw.VendorId != "" {
		if err := request.SetVendorId(raw.VendorId); err != nil {
			return err
		}
	}
	if err := request.SetMessageId(raw.MessageId); err != nil {
		return err
	}
	*r = request
	return nil
}

type DataTransferResponse struct {
	status DataTransferStatus
	data   string
}

type dataTransferResponseJSON struct {
	Status DataTransferStatus `json:"status,omitempty"`
	Data   string             `json:"data,omitempty"`
}

func NewDataTransferResponse(status DataTransferStatus) (*DataTransferResponse, error) {
	response := &DataTransferResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *DataTransferResponse) GetFeatureName() string {
	return DataTransferFeatureName
}

func (c *DataTransferResponse) Status() DataTransferStatus {
	return c.status
}

func (c *DataTransferResponse) SetStatus(status DataTransferStatus) error {
	if err := validation.Check("status", status, "dataTransferStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *DataTransferResponse) Data() string {
	return c.data
}

func (c *DataTransferResponse) SetData(data string) {
	c.data = data
}

func (c *DataTransferResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *DataTransferResponse) Validate() bool {
	return validation.Valid(c)
}

func (c DataTransferResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataTransferResponseJSON{Status: c.status, Data: c.data})
}

func (c *DataTransferResponse) UnmarshalJSON(data []byte) error {
	var raw dataTransferResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	response := DataTransferResponse{data: raw.Data}
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type DataTransferFeature struct{}

func (f DataTransferFeature) GetFeatureName() string {
	return DataTransferFeatureName
}

func (f DataTransferFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(DataTransferRequest{})
}

func (f DataTransferFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(DataTransferResponse{})
}
