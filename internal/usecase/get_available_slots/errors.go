package get_available_slots

import "errors"

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrDateNotAllowed = errors.New("date not allowed")
)
