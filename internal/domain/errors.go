package domain

import "errors"

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrBookingNotFound   = errors.New("booking not found")
)

// Policy violations: the request is rejected without touching state and
// the caller may retry with different parameters.
var (
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrDurationLimit   = errors.New("booking duration exceeds the maximum")
	ErrTooFarAhead     = errors.New("booking starts too far in the future")
	ErrInvalidWindow   = errors.New("end time must be after start time")
)

var (
	ErrWrongStatus    = errors.New("booking is not in a status that allows this transition")
	ErrAlreadyStarted = errors.New("an active booking can only be cancelled before its start time")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
