package model

import "errors"

var (
	// ErrWeaponType is returned when a playable cannot wield a weapon class.
	ErrWeaponType = errors.New("incompatible weapon type")

	ErrUnknownWeaponType    = errors.New("unknown weapon type")
	ErrUnknownSecondaryStat = errors.New("unknown secondary stat")
)
