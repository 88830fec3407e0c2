package domain

import "errors"

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPendingNotFound   = errors.New("pending promotion not found")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPendingResolved   = errors.New("pending promotion already resolved")
	ErrPendingDuplicate  = errors.New("listing already has a pending promotion")
)

var (
	ErrValidation = errors.New("validation error")
)
