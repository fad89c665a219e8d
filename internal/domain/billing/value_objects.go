package billing

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyCouponCode        = errors.New("coupon code cannot be empty")
	ErrCouponCodeTooLong      = errors.New("coupon code is too long")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be greater than 0 and at most 100")
	ErrInvalidDuration        = errors.New("invalid coupon duration")
	ErrMonthsRequired         = errors.New("duration_in_months is required for repeating coupons")
	ErrMonthsNotAllowed       = errors.New("duration_in_months is only allowed for repeating coupons")
	ErrInvalidInterval        = errors.New("invalid billing interval")
	ErrInvalidIntervalCount   = errors.New("interval count must be at least 1")
	ErrInvalidAmount          = errors.New("unit amount must be positive")
	ErrInvalidCurrency        = errors.New("currency must be a three-letter ISO code")
	ErrInvalidLookupKey       = errors.New("invalid price lookup key")
	ErrEmptyProductName       = errors.New("product name cannot be empty")
)

var (
	currencyRegex  = regexp.MustCompile(`^[a-z]{3}$`)
	lookupKeyRegex = regexp.MustCompile(`^[a-z0-9_]{3,60}$`)
)

const maxCouponCodeLength = 200

// CouponCode is used verbatim as the provider id. Provider ids are
// case-sensitive, so only surrounding whitespace is removed.
type CouponCode string

func NewCouponCode(code string) (CouponCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCouponCode
	}
	if utf8.RuneCountInString(code) > maxCouponCodeLength {
		return "", ErrCouponCodeTooLong
	}
	return CouponCode(code), nil
}

func (c CouponCode) String() string {
	return string(c)
}

type Duration string

const (
	DurationOnce      Duration = "once"
	DurationRepeating Duration = "repeating"
	DurationForever   Duration = "forever"
)

func (d Duration) IsValid() bool {
	switch d {
	case DurationOnce, DurationRepeating, DurationForever:
		return true
	default:
		return false
	}
}

func NewDuration(s string) (Duration, error) {
	d := Duration(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", ErrInvalidDuration
	}
	return d, nil
}

type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

func (i Interval) IsValid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return true
	default:
		return false
	}
}

func NewInterval(s string) (Interval, error) {
	i := Interval(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", ErrInvalidInterval
	}
	return i, nil
}

type Currency string

func NewCurrency(s string) (Currency, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if !currencyRegex.MatchString(c) {
		return "", ErrInvalidCurrency
	}
	return Currency(c), nil
}

func (c Currency) String() string {
	return string(c)
}
