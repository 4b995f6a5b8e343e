package salon

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOfferNotFound = errors.New("weekly offer not found")
)
