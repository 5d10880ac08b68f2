package services

import "errors"

var (
	// ErrInvalidRange is returned when checkIn is not strictly before checkOut.
	ErrInvalidRange = errors.New("check-in must be before check-out")
	// ErrBookingConflict is returned when a blocking reservation already
	// holds the room for part of the requested stay.
	ErrBookingConflict   = errors.New("room is already booked for these dates")
	ErrIllegalTransition = errors.New("illegal reservation status transition")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
)
