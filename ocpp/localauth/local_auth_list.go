// Package localauth holds the messages of the OCPP 1.6 LocalAuthListManagement profile.
package localauth

import "ocpp16/ocpp"

const ProfileName = "LocalAuthListManagement"

var Profile = ocpp.NewProfile(ProfileName,
	GetLocalListVersionFeature{},
	SendLocalListFeature{},
)
