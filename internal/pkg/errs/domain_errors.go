package errs

import "errors"

// Sentinel errors shared by the usecase layer
var (
	// Catalog errors
	ErrDuplicateSeed = errors.New("duplicate category name in seed list")
	ErrEmptySeedList = errors.New("seed list is empty")

	// Billing errors
	ErrBillingNotConfigured = errors.New("billing provider is not configured")
	ErrInvalidCouponSpec    = errors.New("invalid coupon spec")
	ErrInvalidPlanSpec      = errors.New("invalid plan spec")

	// Cache errors
	ErrCacheUnavailable = errors.New("cache store unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
