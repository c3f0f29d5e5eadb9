package firmware

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const DiagnosticsStatusNotificationFeatureName = "DiagnosticsStatusNotification"

type DiagnosticsStatus string

const (
	DiagnosticsStatusIdle         DiagnosticsStatus = "Idle"
	DiagnosticsStatusUploaded     DiagnosticsStatus = "Uploaded"
	DiagnosticsStatusUploadFailed DiagnosticsStatus = "UploadFailed"
	DiagnosticsStatusUploading    DiagnosticsStatus = "Uploading"
)

func init() {
	validation.RegisterEnum("diagnosticsStatus",
		string(DiagnosticsStatusIdle),
		string(DiagnosticsStatusUploaded),
		string(DiagnosticsStatusUploadFailed),
		string(DiagnosticsStatusUploading))
}

type DiagnosticsStatusNotificationRequest struct {
	status DiagnosticsStatus
}

type diagnosticsStatusNotificationRequestJSON struct {
	Status DiagnosticsStatus `json:"status,omitempty"`
}

func NewDiagnosticsStatusNotificationRequest(status DiagnosticsStatus) (*DiagnosticsStatusNotificationRequest, error) {
	request := &DiagnosticsStatusNotificationRequest{}
	if err := request.SetStatus(status); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *DiagnosticsStatusNotificationRequest) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func (r *DiagnosticsStatusNotificationRequest) Status() DiagnosticsStatus {
	return r.status
}

func (r *DiagnosticsStatusNotificationRequest) SetStatus(status DiagnosticsStatus) error {
	if err := validation.Check("status", status, "diagnosticsStatus"); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *DiagnosticsStatusNotificationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("status", r.status != "")
	return c.Result()
}

func (r *DiagnosticsStatusNotificationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r DiagnosticsStatusNotificationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(diagnosticsStatusNotificationRequestJSON{Status: r.status})
}

func (r *DiagnosticsStatusNotificationRequest) UnmarshalJSON(data []byte) error {
	var raw diagnosticsStatusNotificationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request DiagnosticsStatusNotificationRequest
	if raw.Status != "" {
		if err := request.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type DiagnosticsStatusNotificationResponse struct{}

func NewDiagnosticsStatusNotificationResponse() *DiagnosticsStatusNotificationResponse {
	return &DiagnosticsStatusNotificationResponse{}
}

func (c *DiagnosticsStatusNotificationResponse) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func (c *DiagnosticsStatusNotificationResponse) Violations() validation.Errors {
	return nil
}

func (c *DiagnosticsStatusNotificationResponse) Validate() bool {
	return true
}

func (c DiagnosticsStatusNotificationResponse) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *DiagnosticsStatusNotificationResponse) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type DiagnosticsStatusNotificationFeature struct{}

func (f DiagnosticsStatusNotificationFeature) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func (f DiagnosticsStatusNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(DiagnosticsStatusNotificationRequest{})
}

func (f DiagnosticsStatusNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(DiagnosticsStatusNotificationResponse{})
}
