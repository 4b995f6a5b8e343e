package loyalty

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrVoucherNotFound  = errors.New("voucher not found")
	ErrReferralNotFound = errors.New("referral entry not found")
	ErrInvalidPoints    = errors.New("invalid points value")
)
