package billing

import "strings"

// Coupon is a provider-side discount whose code doubles as the provider id.
type Coupon struct {
	code             CouponCode
	name             string
	percentOff       float64
	duration         Duration
	durationInMonths *int64
}

func NewCoupon(code, name string, percentOff float64, duration Duration, durationInMonths *int64) (*Coupon, error) {
	c, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	if percentOff <= 0 || percentOff > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if !duration.IsValid() {
		return nil, ErrInvalidDuration
	}
	switch {
	case duration == DurationRepeating && (durationInMonths == nil || *durationInMonths <= 0):
		return nil, ErrMonthsRequired
	case duration != DurationRepeating && durationInMonths != nil:
		return nil, ErrMonthsNotAllowed
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = c.String()
	}

	var months *int64
	if durationInMonths != nil {
		m := *durationInMonths
		months = &m
	}

	return &Coupon{
		code:             c,
		name:             name,
		percentOff:       percentOff,
		duration:         duration,
		durationInMonths: months,
	}, nil
}

func (c *Coupon) Code() CouponCode         { return c.code }
func (c *Coupon) Name() string             { return c.name }
func (c *Coupon) PercentOff() float64      { return c.percentOff }
func (c *Coupon) Duration() Duration       { return c.duration }
func (c *Coupon) DurationInMonths() *int64 { return c.durationInMonths }
