//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/commands"
	commandsmock "venue-marketplace/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BillingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *commandsmock.MockBillingGateway
	commands commands.BillingCommands
}

func (s *BillingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockBillingGateway(s.mockCtrl)
	s.commands = commands.NewBillingCommands(s.gateway, billing.Currency("brl"), discardLogger())
}

func (s *BillingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BillingCommandsTestSuite))
}

func months(n int64) *int64 { return &n }

var (
	launchCoupon = billing.CouponSpec{
		Code:             "LANCAMENTO50",
		PercentOff:       50,
		Duration:         billing.DurationRepeating,
		DurationInMonths: months(3),
	}
	monthlyPlan = billing.PlanSpec{
		LookupKey:       "host_pro_monthly",
		Name:            "Host Pro",
		UnitAmountCents: 4990,
		Interval:        billing.IntervalMonth,
		EnvName:         "STRIPE_PRICE_HOST_PRO_MONTHLY",
	}
	alreadyExists = errs.Mark(errors.New("coupon exists"), commands.ErrProviderResourceExists)
)

func activePrice(id string, amount int64) *billing.Price {
	return &billing.Price{
		ID:              id,
		UnitAmountCents: amount,
		Currency:        "brl",
		Interval:        billing.IntervalMonth,
		IntervalCount:   1,
	}
}

// ================================================================================
// ProvisionCoupon
// ================================================================================

func (s *BillingCommandsTestSuite) TestProvisionCoupon() {
	s.Run("成功: 新規作成", func() {
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *billing.Coupon) (string, error) {
				s.Equal("LANCAMENTO50", c.Code().String())
				s.Equal(billing.DurationRepeating, c.Duration())
				return "LANCAMENTO50", nil
			}).Times(1)

		res, err := s.commands.ProvisionCoupon(s.ctx, launchCoupon)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("LANCAMENTO50", res.Code)
		s.False(res.AlreadyExisted)
	})

	s.Run("成功: コードは大文字小文字を変えずにIDとして使う", func() {
		mixed := billing.CouponSpec{Code: "welcome10", PercentOff: 10, Duration: billing.DurationOnce}
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *billing.Coupon) (string, error) {
				return c.Code().String(), nil
			}).Times(1)

		res, err := s.commands.ProvisionCoupon(s.ctx, mixed)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal(mixed.Code, res.Code)
	})

	s.Run("成功: 既存の小文字コードも既存扱い", func() {
		mixed := billing.CouponSpec{Code: "welcome10", PercentOff: 10, Duration: billing.DurationOnce}
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return("", alreadyExists).Times(1)

		res, err := s.commands.ProvisionCoupon(s.ctx, mixed)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("welcome10", res.Code)
		s.True(res.AlreadyExisted)
	})

	s.Run("成功: 既存クーポンは成功扱い", func() {
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return("", alreadyExists).Times(1)

		res, err := s.commands.ProvisionCoupon(s.ctx, launchCoupon)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("LANCAMENTO50", res.Code)
		s.True(res.AlreadyExisted)
	})

	s.Run("プロバイダ障害は結果なし", func() {
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return("", errors.New("api down")).Times(1)

		res, err := s.commands.ProvisionCoupon(s.ctx, launchCoupon)
		s.NoError(err)
		s.Nil(res)
	})

	s.Run("エラー: repeating で月数なし", func() {
		bad := launchCoupon
		bad.DurationInMonths = nil
		_, err := s.commands.ProvisionCoupon(s.ctx, bad)
		s.True(errs.Is(err, errs.ErrInvalidCouponSpec))
	})

	s.Run("エラー: 割引率が範囲外", func() {
		for _, pct := range []float64{0, -5, 100.5} {
			bad := launchCoupon
			bad.PercentOff = pct
			_, err := s.commands.ProvisionCoupon(s.ctx, bad)
			s.True(errs.Is(err, errs.ErrInvalidCouponSpec), "percent %v", pct)
		}
	})

	s.Run("エラー: 空のコード", func() {
		bad := launchCoupon
		bad.Code = "   "
		_, err := s.commands.ProvisionCoupon(s.ctx, bad)
		s.True(errs.Is(err, errs.ErrInvalidCouponSpec))
	})
}

// ================================================================================
// ProvisionPlan
// ================================================================================

func (s *BillingCommandsTestSuite) TestProvisionPlan() {
	s.Run("成功: 商品と価格を新規作成", func() {
		gomock.InOrder(
			s.gateway.EXPECT().FindActivePrice(gomock.Any(), "host_pro_monthly").Return(nil, nil),
			s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("prod_host_pro_monthly", nil),
			s.gateway.EXPECT().CreatePrice(gomock.Any(), gomock.Any(), "prod_host_pro_monthly", false).
				DoAndReturn(func(_ context.Context, p *billing.Plan, _ string, _ bool) (string, error) {
					s.Equal(int64(4990), p.UnitAmountCents())
					s.Equal("brl", p.Currency().String())
					s.Equal(int64(1), p.IntervalCount())
					return "price_123", nil
				}),
		)

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("prod_host_pro_monthly", res.ProductID)
		s.Equal("price_123", res.PriceID)
		s.Equal("STRIPE_PRICE_HOST_PRO_MONTHLY", res.EnvName)
		s.False(res.ProductReused)
		s.False(res.PriceReused)
	})

	s.Run("成功: 既存の商品と価格を再利用", func() {
		s.gateway.EXPECT().FindActivePrice(gomock.Any(), "host_pro_monthly").Return(activePrice("price_old", 4990), nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", alreadyExists)

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("prod_host_pro_monthly", res.ProductID)
		s.Equal("price_old", res.PriceID)
		s.True(res.ProductReused)
		s.True(res.PriceReused)
		s.Empty(res.ReplacedPriceID)
	})

	s.Run("成功: 金額が変わった価格は置き換える", func() {
		changed := monthlyPlan
		changed.UnitAmountCents = 5990

		s.gateway.EXPECT().FindActivePrice(gomock.Any(), "host_pro_monthly").Return(activePrice("price_old_4990", 4990), nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", alreadyExists)
		s.gateway.EXPECT().CreatePrice(gomock.Any(), gomock.Any(), "prod_host_pro_monthly", true).
			DoAndReturn(func(_ context.Context, p *billing.Plan, _ string, _ bool) (string, error) {
				s.Equal(int64(5990), p.UnitAmountCents())
				return "price_new_5990", nil
			}).Times(1)

		res, err := s.commands.ProvisionPlan(s.ctx, changed)
		s.Require().NoError(err)
		s.Require().NotNil(res)
		s.Equal("price_new_5990", res.PriceID)
		s.Equal(int64(5990), res.UnitAmount)
		s.False(res.PriceReused)
		s.Equal("price_old_4990", res.ReplacedPriceID)
	})

	s.Run("成功: 周期が変わった価格も置き換える", func() {
		yearly := activePrice("price_yearly", 4990)
		yearly.Interval = billing.IntervalYear

		s.gateway.EXPECT().FindActivePrice(gomock.Any(), gomock.Any()).Return(yearly, nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", alreadyExists)
		s.gateway.EXPECT().CreatePrice(gomock.Any(), gomock.Any(), "prod_host_pro_monthly", true).Return("price_monthly", nil)

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.Require().NoError(err)
		s.Equal("price_monthly", res.PriceID)
		s.Equal("price_yearly", res.ReplacedPriceID)
	})

	s.Run("成功: 商品は既存、価格は新規", func() {
		s.gateway.EXPECT().FindActivePrice(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", alreadyExists)
		s.gateway.EXPECT().CreatePrice(gomock.Any(), gomock.Any(), "prod_host_pro_monthly", false).Return("price_new", nil)

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.Require().NoError(err)
		s.Equal("price_new", res.PriceID)
		s.True(res.ProductReused)
	})

	s.Run("価格作成の失敗は結果なし", func() {
		s.gateway.EXPECT().FindActivePrice(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("prod_host_pro_monthly", nil)
		s.gateway.EXPECT().CreatePrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.NoError(err)
		s.Nil(res)
	})

	s.Run("価格検索の失敗は結果なし", func() {
		s.gateway.EXPECT().FindActivePrice(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		res, err := s.commands.ProvisionPlan(s.ctx, monthlyPlan)
		s.NoError(err)
		s.Nil(res)
	})

	s.Run("エラー: 金額ゼロはプロバイダ呼び出し前に拒否", func() {
		bad := monthlyPlan
		bad.UnitAmountCents = 0
		_, err := s.commands.ProvisionPlan(s.ctx, bad)
		s.True(errs.Is(err, errs.ErrInvalidPlanSpec))
	})
}

// ================================================================================
// ProvisionAll
// ================================================================================

func (s *BillingCommandsTestSuite) TestProvisionAll() {
	s.Run("一件の失敗で他は止まらない", func() {
		second := billing.CouponSpec{Code: "BEMVINDO10", PercentOff: 10, Duration: billing.DurationOnce}

		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return("", errors.New("api down"))
		s.gateway.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Return("BEMVINDO10", nil)
		s.gateway.EXPECT().FindActivePrice(gomock.Any(), gomock.Any()).Return(activePrice("price_1", 4990), nil)
		s.gateway.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("", alreadyExists)

		report, err := s.commands.ProvisionAll(s.ctx, []billing.CouponSpec{launchCoupon, second}, []billing.PlanSpec{monthlyPlan})
		s.Require().NoError(err)
		s.Equal([]string{"LANCAMENTO50"}, report.FailedCoupons)
		s.Require().Len(report.Coupons, 1)
		s.Equal("BEMVINDO10", report.Coupons[0].Code)
		s.Require().Len(report.Plans, 1)
		s.Equal("price_1", report.Plans[0].PriceID)
		s.True(report.HasFailures())
	})

	s.Run("エラー: 不正な仕様があれば何も呼ばない", func() {
		bad := monthlyPlan
		bad.Interval = billing.Interval("fortnight")

		_, err := s.commands.ProvisionAll(s.ctx, []billing.CouponSpec{launchCoupon}, []billing.PlanSpec{bad})
		s.True(errs.Is(err, errs.ErrInvalidPlanSpec))
	})
}
