package billing

// CouponSpec and PlanSpec are the declarative inputs of the provisioner.
type CouponSpec struct {
	Code             string
	Name             string
	PercentOff       float64
	Duration         Duration
	DurationInMonths *int64
}

type PlanSpec struct {
	LookupKey       string
	Name            string
	Description     string
	UnitAmountCents int64
	Interval        Interval
	IntervalCount   int64
	// EnvName is the deployment variable the operator copies the price id into.
	EnvName string
}

func (s CouponSpec) Build() (*Coupon, error) {
	duration, err := NewDuration(string(s.Duration))
	if err != nil {
		return nil, err
	}
	return NewCoupon(s.Code, s.Name, s.PercentOff, duration, s.DurationInMonths)
}

func (s PlanSpec) Build(currency Currency) (*Plan, error) {
	interval, err := NewInterval(string(s.Interval))
	if err != nil {
		return nil, err
	}
	return NewPlan(s.LookupKey, s.Name, s.Description, s.UnitAmountCents, currency, interval, s.IntervalCount)
}

func int64Ptr(v int64) *int64 { return &v }

var DefaultCoupons = []CouponSpec{
	{
		Code:             "LANCAMENTO50",
		Name:             "Lançamento 50% por 3 meses",
		PercentOff:       50,
		Duration:         DurationRepeating,
		DurationInMonths: int64Ptr(3),
	},
}

var DefaultPlans = []PlanSpec{
	{
		LookupKey:       "host_pro_monthly",
		Name:            "Anfitrião Pro (mensal)",
		Description:     "Destaque nas buscas, agenda integrada e taxa reduzida por reserva.",
		UnitAmountCents: 4990,
		Interval:        IntervalMonth,
		IntervalCount:   1,
		EnvName:         "STRIPE_PRICE_HOST_PRO_MONTHLY",
	},
	{
		LookupKey:       "host_pro_yearly",
		Name:            "Anfitrião Pro (anual)",
		Description:     "Plano Pro com cobrança anual e dois meses de desconto.",
		UnitAmountCents: 49900,
		Interval:        IntervalYear,
		IntervalCount:   1,
		EnvName:         "STRIPE_PRICE_HOST_PRO_YEARLY",
	},
}
