package commands

import (
	"context"
	"log/slog"

	"venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/pkg/errs"
)

type CouponResult struct {
	Code           string
	AlreadyExisted bool
}

type PlanResult struct {
	LookupKey     string
	EnvName       string
	ProductID     string
	PriceID       string
	ProductReused bool
	PriceReused   bool
	// ReplacedPriceID is the active price whose lookup key moved to PriceID
	// because its amount or recurrence no longer matched the plan.
	ReplacedPriceID string
	UnitAmount      int64
	Currency        string
	Interval        string
	IntervalCount   int64
}

// ProvisionReport keeps per-item outcomes; failed items are listed by key.
type ProvisionReport struct {
	Coupons       []CouponResult
	Plans         []PlanResult
	FailedCoupons []string
	FailedPlans   []string
}

func (r *ProvisionReport) HasFailures() bool {
	return len(r.FailedCoupons) > 0 || len(r.FailedPlans) > 0
}

type BillingCommands interface {
	// ProvisionCoupon returns (nil, nil) when the provider call failed for a
	// reason other than the coupon already existing; the failure is logged.
	ProvisionCoupon(ctx context.Context, spec billing.CouponSpec) (*CouponResult, error)
	// ProvisionPlan returns (nil, nil) on provider failure; the failure is logged.
	ProvisionPlan(ctx context.Context, spec billing.PlanSpec) (*PlanResult, error)
	ProvisionAll(ctx context.Context, coupons []billing.CouponSpec, plans []billing.PlanSpec) (*ProvisionReport, error)
}

type billingUseCaseImpl struct {
	gateway  BillingGateway
	currency billing.Currency
	logger   *slog.Logger
}

func NewBillingCommands(gateway BillingGateway, currency billing.Currency, logger *slog.Logger) BillingCommands {
	return &billingUseCaseImpl{gateway: gateway, currency: currency, logger: logger}
}

func (uc *billingUseCaseImpl) ProvisionCoupon(ctx context.Context, spec billing.CouponSpec) (*CouponResult, error) {
	coupon, err := spec.Build()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCouponSpec)
	}

	id, err := uc.gateway.CreateCoupon(ctx, coupon)
	if err != nil {
		if errs.Is(err, ErrProviderResourceExists) {
			uc.logger.Info("coupon already exists", "code", coupon.Code().String())
			return &CouponResult{Code: coupon.Code().String(), AlreadyExisted: true}, nil
		}
		uc.logger.Error("failed to create coupon",
			"code", coupon.Code().String(),
			"error", err.Error())
		return nil, nil
	}

	uc.logger.Info("coupon created", "code", id)
	return &CouponResult{Code: id}, nil
}

func (uc *billingUseCaseImpl) ProvisionPlan(ctx context.Context, spec billing.PlanSpec) (*PlanResult, error) {
	plan, err := spec.Build(uc.currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlanSpec)
	}

	result := &PlanResult{
		LookupKey:     plan.LookupKey(),
		EnvName:       spec.EnvName,
		UnitAmount:    plan.UnitAmountCents(),
		Currency:      plan.Currency().String(),
		Interval:      string(plan.Interval()),
		IntervalCount: plan.IntervalCount(),
	}

	existing, err := uc.gateway.FindActivePrice(ctx, plan.LookupKey())
	if err != nil {
		uc.logPlanFailure("failed to look up price", plan, err)
		return nil, nil
	}

	productID, err := uc.gateway.CreateProduct(ctx, plan)
	switch {
	case err == nil:
	case errs.Is(err, ErrProviderResourceExists):
		productID = plan.ProductID()
		result.ProductReused = true
	default:
		uc.logPlanFailure("failed to create product", plan, err)
		return nil, nil
	}
	result.ProductID = productID

	if existing != nil && plan.MatchesPrice(*existing) {
		result.PriceID = existing.ID
		result.PriceReused = true
		uc.logger.Info("plan already provisioned",
			"lookup_key", plan.LookupKey(),
			"product_id", productID,
			"price_id", existing.ID)
		return result, nil
	}

	transfer := existing != nil
	if transfer {
		result.ReplacedPriceID = existing.ID
		uc.logger.Warn("active price differs from plan, replacing it",
			"lookup_key", plan.LookupKey(),
			"price_id", existing.ID,
			"price_amount", existing.UnitAmountCents,
			"price_interval", string(existing.Interval),
			"plan_amount", plan.UnitAmountCents(),
			"plan_interval", string(plan.Interval()))
	}

	priceID, err := uc.gateway.CreatePrice(ctx, plan, productID, transfer)
	if err != nil {
		uc.logPlanFailure("failed to create price", plan, err)
		return nil, nil
	}
	result.PriceID = priceID

	uc.logger.Info("plan provisioned",
		"lookup_key", plan.LookupKey(),
		"product_id", productID,
		"price_id", priceID)
	return result, nil
}

// ProvisionAll validates every spec up front, then provisions sequentially.
// A provider failure on one item never stops the others.
func (uc *billingUseCaseImpl) ProvisionAll(ctx context.Context, coupons []billing.CouponSpec, plans []billing.PlanSpec) (*ProvisionReport, error) {
	for _, c := range coupons {
		if _, err := c.Build(); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "coupon %q", c.Code), errs.ErrInvalidCouponSpec)
		}
	}
	for _, p := range plans {
		if _, err := p.Build(uc.currency); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "plan %q", p.LookupKey), errs.ErrInvalidPlanSpec)
		}
	}

	report := &ProvisionReport{}
	for _, c := range coupons {
		res, err := uc.ProvisionCoupon(ctx, c)
		if err != nil {
			return nil, err
		}
		if res == nil {
			report.FailedCoupons = append(report.FailedCoupons, c.Code)
			continue
		}
		report.Coupons = append(report.Coupons, *res)
	}
	for _, p := range plans {
		res, err := uc.ProvisionPlan(ctx, p)
		if err != nil {
			return nil, err
		}
		if res == nil {
			report.FailedPlans = append(report.FailedPlans, p.LookupKey)
			continue
		}
		report.Plans = append(report.Plans, *res)
	}
	return report, nil
}

func (uc *billingUseCaseImpl) logPlanFailure(msg string, plan *billing.Plan, err error) {
	uc.logger.Error(msg,
		"lookup_key", plan.LookupKey(),
		"product_id", plan.ProductID(),
		"error", err.Error())
}
