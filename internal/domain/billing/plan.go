package billing

import "strings"

// Plan is a subscription product together with its single recurring price.
// The lookup key identifies the pair on the provider across runs.
type Plan struct {
	lookupKey       string
	name            string
	description     string
	unitAmountCents int64
	currency        Currency
	interval        Interval
	intervalCount   int64
}

func NewPlan(lookupKey, name, description string, unitAmountCents int64, currency Currency, interval Interval, intervalCount int64) (*Plan, error) {
	lookupKey = strings.TrimSpace(lookupKey)
	if !lookupKeyRegex.MatchString(lookupKey) {
		return nil, ErrInvalidLookupKey
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if unitAmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := NewCurrency(string(currency)); err != nil {
		return nil, err
	}
	if !interval.IsValid() {
		return nil, ErrInvalidInterval
	}
	if intervalCount == 0 {
		intervalCount = 1
	}
	if intervalCount < 1 {
		return nil, ErrInvalidIntervalCount
	}

	return &Plan{
		lookupKey:       lookupKey,
		name:            name,
		description:     strings.TrimSpace(description),
		unitAmountCents: unitAmountCents,
		currency:        currency,
		interval:        interval,
		intervalCount:   intervalCount,
	}, nil
}

// ProductID is the deterministic provider id of the plan's product.
func (p *Plan) ProductID() string {
	return "prod_" + p.lookupKey
}

func (p *Plan) LookupKey() string      { return p.lookupKey }
func (p *Plan) Name() string           { return p.name }
func (p *Plan) Description() string    { return p.description }
func (p *Plan) UnitAmountCents() int64 { return p.unitAmountCents }
func (p *Plan) Currency() Currency     { return p.currency }
func (p *Plan) Interval() Interval     { return p.interval }
func (p *Plan) IntervalCount() int64   { return p.intervalCount }

// Price is the provider's view of an existing recurring price.
type Price struct {
	ID              string
	UnitAmountCents int64
	Currency        Currency
	Interval        Interval
	IntervalCount   int64
}

// MatchesPrice reports whether an existing price already charges what the
// plan asks for. A price with a stale amount or recurrence must be replaced.
func (p *Plan) MatchesPrice(price Price) bool {
	return price.UnitAmountCents == p.unitAmountCents &&
		price.Currency == p.currency &&
		price.Interval == p.interval &&
		price.IntervalCount == p.intervalCount
}
