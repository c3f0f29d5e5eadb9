// Package firmware holds the messages of the OCPP 1.6 FirmwareManagement profile.
package firmware

import "ocpp16/ocpp"

const ProfileName = "FirmwareManagement"

var Profile = ocpp.NewProfile(ProfileName,
	GetDiagnosticsFeature{},
	DiagnosticsStatusNotificationFeature{},
	FirmwareStatusNotificationFeature{},
	UpdateFirmwareFeature{},
)

// retry settings shared by GetDiagnostics and UpdateFirmware
const retryRules = "gte=0"
