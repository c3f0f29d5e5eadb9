// Package core holds the messages of the OCPP 1.6 Core profile.
package core

import (
	"ocpp16/ocpp"
	"ocpp16/validation"
)

const ProfileName = "Core"

// Profile lists every action of the Core profile.
var Profile = ocpp.NewProfile(ProfileName,
	AuthorizeFeature{},
	BootNotificationFeature{},
	ChangeAvailabilityFeature{},
	ChangeConfigurationFeature{},
	ClearCacheFeature{},
	DataTransferFeature{},
	GetConfigurationFeature{},
	HeartbeatFeature{},
	MeterValuesFeature{},
	RemoteStartTransactionFeature{},
	RemoteStopTransactionFeature{},
	ResetFeature{},
	StartTransactionFeature{},
	StatusNotificationFeature{},
	StopTransactionFeature{},
	UnlockConnectorFeature{},
)

// setString assigns value to dst only when it satisfies rules.
func setString(dst *string, field string, value string, rules string) error {
	if err := validation.Check(field, value, rules); err != nil {
		return err
	}
	*dst = value
	return nil
}
