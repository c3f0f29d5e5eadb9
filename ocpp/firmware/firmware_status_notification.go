package firmware

import (
	"encoding/json"
	"reflect"

	"ocpp16/types"
	"ocpp16/validation"
)

const FirmwareStatusNotificationFeatureName = "FirmwareStatusNotification"

type FirmwareStatus string

const (
	FirmwareStatusDownloaded         FirmwareStatus = "Downloaded"
	FirmwareStatusDownloadFailed     FirmwareStatus = "DownloadFailed"
	FirmwareStatusDownloading        FirmwareStatus = "Downloading"
	FirmwareStatusIdle               FirmwareStatus = "Idle"
	FirmwareStatusInstallationFailed FirmwareStatus = "InstallationFailed"
	FirmwareStatusInstalling         FirmwareStatus = "Installing"
	FirmwareStatusInstalled          FirmwareStatus = "Installed"
)

func init() {
	validation.RegisterEnum("firmwareStatus",
		string(FirmwareStatusDownloaded),
		string(FirmwareStatusDownloadFailed),
		string(FirmwareStatusDownloading),
		string(FirmwareStatusIdle),
		string(FirmwareStatusInstallationFailed),
		string(FirmwareStatusInstalling),
		string(FirmwareStatusInstalled))
}

type FirmwareStatusNotificationRequest struct {
	status FirmwareStatus
}

type firmwareStatusNotificationRequestJSON struct {
	Status FirmwareStatus `json:"status,omitempty"`
}

func NewFirmwareStatusNotificationRequest(status FirmwareStatus) (*FirmwareStatusNotificationRequest, error) {
	request := &FirmwareStatusNotificationRequest{}
	if err := request.SetStatus(status); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *FirmwareStatusNotificationRequest) GetFeatureName() string {
	return FirmwareStatusNotificationFeatureName
}

func (r *FirmwareStatusNotificationRequest) Status() FirmwareStatus {
	return r.status
}

func (r *FirmwareStatusNotificationRequest) SetStatus(status FirmwareStatus) error {
	if err := validation.Check("status", status, "firmwareStatus"); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *FirmwareStatusNotificationRequest) Violations() validation.Errors {
	var c validation.Collector
	c.Require("status", r.status != "")
	return c.Result()
}

func (r *FirmwareStatusNotificationRequest) Validate() bool {
	return validation.Valid(r)
}

func (r FirmwareStatusNotificationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(firmwareStatusNotificationRequestJSON{Status: r.status})
}

func (r *FirmwareStatusNotificationRequest) UnmarshalJSON(data []byte) error {
	var raw firmwareStatusNotificationRequestJSON
	if err := types.Unmarshal(data, &raw); err != nil {
		return err
	}
	var request FirmwareStatusNotificationRequest
	if raw.Status != "" {
		if err := request.SetStatus(raw.Status); err != nil {
			return err
		}
	}
	*r = request
	return nil
}

type FirmwareStatusNotificationResponse struct{}

func NewFirmwareStatusNotificationResponse() *FirmwareStatusNotificationResponse {
	return &FirmwareStatusNotificationResponse{}
}

func (c *FirmwareStatusNotificationResponse) GetFeatureName() string {
	return FirmwareStatusNotificationFeatureName
}

func (c *FirmwareStatusNotificationResponse) Violations() validation.Errors {
	return nil
}

func (c *FirmwareStatusNotificationResponse) Validate() bool {
	return true
}

func (c FirmwareStatusNotificationResponse) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *FirmwareStatusNotificationResponse) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEmpty(data)
}

type FirmwareStatusNotificationFeature struct{}

func (f FirmwareStatusNotificationFeature) GetFeatureName() string {
	return FirmwareStatusNotificationFeatureName
}

func (f FirmwareStatusNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(FirmwareStatusNotificationRequest{})
}

func (f FirmwareStatusNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(FirmwareStatusNotificationResponse{})
}
