package create_booking

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrServiceNotFound = errors.New("service not found")
	ErrDateNotAllowed  = errors.New("date not allowed")
	ErrSlotNotAllowed  = errors.New("slot not allowed")
)
