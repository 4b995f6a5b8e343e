package appointments

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidRating       = errors.New("invalid rating value")
	ErrAlreadyRated        = errors.New("appointment already rated")
	ErrInvalidInput        = errors.New("invalid input")
)
