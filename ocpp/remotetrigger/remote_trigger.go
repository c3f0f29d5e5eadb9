// Package remotetrigger holds the messages of the OCPP 1.6 RemoteTrigger profile.
package remotetrigger

import "ocpp16/ocpp"

const ProfileName = "RemoteTrigger"

var Profile = ocpp.NewProfile(ProfileName, TriggerMessageFeature{})
