package remotetrigger

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const TriggerMessageFeatureName = "TriggerMessage"

type MessageTrigger string

type TriggerMessageStatus string

const (
	MessageTriggerBootNotification              MessageTrigger       = "BootNotification"
	MessageTriggerDiagnosticsStatusNotification MessageTrigger       = "DiagnosticsStatusNotification"
	MessageTriggerFirmwareStatusNotification    MessageTrigger       = "FirmwareStatusNotification"
	MessageTriggerHeartbeat                     MessageTrigger       = "Heartbeat"
	MessageTriggerMeterValues                   MessageTrigger       = "MeterValues"
	MessageTriggerStatusNotification            MessageTrigger       = "StatusNotification"
	TriggerMessageStatusAccepted                TriggerMessageStatus = "Accepted"
	TriggerMessageStatusRejected                TriggerMessageStatus = "Rejected"
	TriggerMessageStatusNotImplemented          TriggerMessageStatus = "NotImplemented"
)

func init() {
	validation.RegisterEnum("messageTrigger",
		string(MessageTriggerBootNotification),
		string(MessageTriggerDiagnosticsStatusNotification),
		string(MessageTriggerFirmwareStatusNotification),
		string(MessageTriggerHeartbeat),
		string(MessageTriggerMeterValues),
		string(MessageTriggerStatusNotification))
	validation.RegisterEnum("triggerMessageStatus",
		string(TriggerMessageStatusAccepted),
		string(TriggerMessageStatusRejected),
		string(TriggerMessageStatusNotImplemented))
}

// TriggerMessageRequest asks a charge point to send requestedMessage, for one connector
// when connectorId is set.
type TriggerMessageRequest struct {
	requestedMessage MessageTrigger
	connectorId      *int
}

type triggerMessageRequestJSON struct {
	RequestedMessage MessageTrigger `json:"requestedMessage,omitempty"`
	ConnectorId      *int           `json:"connectorId,omitempty"`
}

func NewTriggerMessageRequest(requestedMessage MessageTrigger) (*TriggerMessageRequest, error) {
	request := &TriggerMessageRequest{}
	if err := request.SetRequestedMessage(requestedMessage); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *TriggerMessageRequest) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (r *TriggerMessageRequest) RequestedMessage() MessageTrigger {
	return r.requestedMessage
}

func (r *TriggerMessageRequest) SetRequestedMessage(requestedMessage MessageTrigger) error {
	if err := validation.Check("requestedMessage", requestedMessage, "messageTrigger"); err != nil {
		return err
	}
	r.requestedMessage = requestedMessage
	return nil
}

func (r *TriggerMessageRequest) ConnectorId() *int {
	return r.connectorId
}

func (r *TriggerMessageRequest) SetConnectorId(connectorId int) error {
	if err := validation.Check("connectorId", connectorId, "gt=0"); err != nil {
		return err
	}
	r.connectorId = &connectorId
	return nil
}

func (r *TriggerMessageRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("requestedMessage", r.requestedMessage != "")
	return c.Result()
}

func (r *TriggerMessageRequest) Validate() bool {
	return validation.Valid(r)
}

func (r TriggerMessageRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(triggerMessageRequestJSON{RequestedMessage: r.requestedMessage, ConnectorId: r.connectorId})
}

func (r *TriggerMessageRequest) UnmarshalJSON(data []byte) error {
	var raw triggerMessageRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request TriggerMessageRequest
	if raw.RequestedMessage != "" {
		if err := request.SetRequestedMessage(raw.RequestedMessage); err != nil {
			return err
		}
	}
	if raw.ConnectorId != nil {
		if err := request.SetConnectorId(*raw.ConnectorId); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type TriggerMessageResponse struct {
	status TriggerMessageStatus
}

type triggerMessageResponseJSON struct {
	Status TriggerMessageStatus `json:"status,omitempty"`
}

func NewTriggerMessageResponse(status TriggerMessageStatus) (*TriggerMessageResponse, error) {
	response := &TriggerMessageResponse{}
	if err := response.SetStatus(status); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *TriggerMessageResponse) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (c *TriggerMessageResponse) Status() TriggerMessageStatus {
	return c.status
}

func (c *TriggerMessageResponse) SetStatus(status TriggerMessageStatus) error {
	if err := validation.Check("status", status, "triggerMessageStatus"); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *TriggerMessageResponse) Violations() validation.Errors {
	var v validation.Collector
	v.Require("status", c.status != "")
	return v.Result()
}

func (c *TriggerMessageResponse) Validate() bool {
	return validation.Valid(c)
}

func (c TriggerMessageResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(triggerMessageResponseJSON{Status: c.status})
}

func (c *TriggerMessageResponse) UnmarshalJSON(data []byte) error {
	var raw triggerMessageResponseJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var response TriggerMessageResponse
	if raw.Status != "" {
		if err := response.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*c = response
	return nil
}

type TriggerMessageFeature struct{}

func (f TriggerMessageFeature) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (f TriggerMessageFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(TriggerMessageRequest{})
}

func (f TriggerMessageFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(TriggerMessageResponse{})
}
