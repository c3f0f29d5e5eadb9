// Package reservation holds the messages of the OCPP 1.6 Reservation profile.
package reservation

import "ocpp16/ocpp"

const ProfileName = "Reservation"

var Profile = ocpp.NewProfile(ProfileName,
	ReserveNowFeature{},
	CancelReservationFeature{},
)
