// Package smartcharging holds the messages of the OCPP 1.6 SmartCharging profile.
package smartcharging

import (
	"time"

	"ocpp16/ocpp"
	"ocpp16/types"
)

const ProfileName = "SmartCharging"

var Profile = ocpp.NewProfile(ProfileName,
	SetChargingProfileFeature{},
	ClearChargingProfileFeature{},
	GetCompositeScheduleFeature{},
)

const (
	defaultProfileId      = 1
	defaultStackLevel     = 1
	transactionProfileId  = 10
	transactionStackLevel = 10
)

// NewDefaultChargingProfile returns a daily recurring TxDefaultProfile limiting every
// transaction to limit amperes, starting now.
func NewDefaultChargingProfile(limit int) (*types.ChargingProfile, error) {
	period, err := types.NewChargingSchedulePeriod(0, float64(limit))
	if err != nil {
		return nil, err
	}
	schedule, err := types.NewChargingSchedule(types.ChargingRateUnitAmperes, period)
	if err != nil {
		return nil, err
	}
	schedule.SetStartSchedule(time.Now())
	if err = schedule.SetDuration(86400); err != nil {
		return nil, err
	}
	profile, err := types.NewChargingProfile(defaultProfileId, defaultStackLevel,
		types.ChargingProfilePurposeTxDefaultProfile, types.ChargingProfileKindRecurring, schedule)
	if err != nil {
		return nil, err
	}
	if err = profile.SetRecurrencyKind(types.RecurrencyKindDaily); err != nil {
		return nil, err
	}
	return profile, nil
}

// NewTransactionChargingProfile returns a relative TxProfile limiting a running transaction.
func NewTransactionChargingProfile(transactionId, limit int) (*types.ChargingProfile, error) {
	period, err := types.NewChargingSchedulePeriod(0, float64(limit))
	if err != nil {
		return nil, err
	}
	schedule, err := types.NewChargingSchedule(types.ChargingRateUnitAmperes, period)
	if err != nil {
		return nil, err
	}
	profile, err := types.NewChargingProfile(transactionProfileId, transactionStackLevel,
		types.ChargingProfilePurposeTxProfile, types.ChargingProfileKindRelative, schedule)
	if err != nil {
		return nil, err
	}
	profile.SetTransactionId(transactionId)
	return profile, nil
}
