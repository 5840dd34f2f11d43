package domain

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailTaken             = errors.New("email already in use")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrSigningKeyMissing      = errors.New("session signing key not configured")
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrClassificationNotFound = errors.New("classification not found")
	ErrClassificationExists   = errors.New("classification already exists")
	ErrTestDriveNotFound      = errors.New("test drive request not found")
	ErrInvalidStatus          = errors.New("invalid test drive status")
)
