//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/infra/db"
	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/commands"
	"venue-marketplace/internal/usecase/shared"
	sharedmock "venue-marketplace/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type CatalogCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	categories *sharedmock.MockCategoryRepository
	listings   *sharedmock.MockListingRepository
	commands   commands.CatalogCommands
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.categories = sharedmock.NewMockCategoryRepository(s.mockCtrl)
	s.listings = sharedmock.NewMockListingRepository(s.mockCtrl)

	s.tx.EXPECT().Categories().Return(s.categories).AnyTimes()
	s.tx.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	runFn := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, s.tx)
	}
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(runFn).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runFn).AnyTimes()

	s.commands = commands.NewCatalogCommands(s.uow, discardLogger())
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

// ================================================================================
// SeedCategories
// ================================================================================

func (s *CatalogCommandsTestSuite) TestSeedCategories() {
	seeds := []category.Seed{
		{Name: "Salão de Festas", Type: category.TypeSpace},
		{Name: " DJ ", Type: category.TypeService},
		{Name: "Gerador", Type: category.TypeEquipment},
	}

	s.Run("成功: 作成・更新・変更なしを集計する", func() {
		var seen []string
		outcomes := []shared.UpsertOutcome{shared.UpsertCreated, shared.UpsertUpdated, shared.UpsertUnchanged}
		call := 0
		s.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, c *category.Category) (shared.UpsertOutcome, error) {
				seen = append(seen, c.Name())
				out := outcomes[call]
				call++
				return out, nil
			}).Times(3)

		result, err := s.commands.SeedCategories(s.ctx, seeds)
		s.Require().NoError(err)
		s.Equal(commands.SeedResult{Created: 1, Updated: 1, Unchanged: 1}, *result)
		s.Equal(3, result.Total())
		if diff := cmp.Diff([]string{"Salão de Festas", "DJ", "Gerador"}, seen); diff != "" {
			s.Failf("seed order mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("エラー: 空のシードリスト", func() {
		_, err := s.commands.SeedCategories(s.ctx, nil)
		s.ErrorIs(err, errs.ErrEmptySeedList)
	})

	s.Run("エラー: 重複した名前は書き込み前に拒否", func() {
		dup := []category.Seed{
			{Name: "DJ", Type: category.TypeService},
			{Name: "dj", Type: category.TypeSpace},
		}
		_, err := s.commands.SeedCategories(s.ctx, dup)
		s.True(errs.Is(err, errs.ErrDuplicateSeed))
	})

	s.Run("エラー: 不正なタイプ", func() {
		_, err := s.commands.SeedCategories(s.ctx, []category.Seed{{Name: "Palco", Type: category.Type("STAGE")}})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("エラー: ストア障害で中断", func() {
		dbErr := infra.WrapRepoErr("failed to upsert category", errors.New("connection refused"))
		s.categories.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.UpsertOutcome(""), dbErr).Times(1)

		_, err := s.commands.SeedCategories(s.ctx, seeds)
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

// ================================================================================
// ReclassifyListings
// ================================================================================

func (s *CatalogCommandsTestSuite) TestReclassifyListings() {
	set, err := listing.NewServiceNameSet([]string{"DJ", "Buffet"})
	s.Require().NoError(err)

	s.Run("成功: 両方の更新件数と合計を返す", func() {
		s.listings.EXPECT().ApplyPartition(gomock.Any(), gomock.Any(), []string{"DJ", "Buffet"}).
			Return(shared.PartitionCounts{MarkedService: 2, MarkedSpace: 5}, nil).Times(1)
		s.listings.EXPECT().CountByType(gomock.Any(), gomock.Any()).
			Return(map[listing.Type]int64{listing.TypeService: 4, listing.TypeSpace: 9}, nil).Times(1)

		result, err := s.commands.ReclassifyListings(s.ctx, set)
		s.Require().NoError(err)
		s.Equal(int64(2), result.MarkedService)
		s.Equal(int64(5), result.MarkedSpace)
		s.Equal(int64(4), result.Totals[listing.TypeService])
		s.Equal(int64(9), result.Totals[listing.TypeSpace])
		s.Equal([]string{"DJ", "Buffet"}, result.ServiceNames)
	})

	s.Run("エラー: 空のサービス名集合", func() {
		_, err := s.commands.ReclassifyListings(s.ctx, listing.ServiceNameSet{})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("エラー: 更新失敗はそのまま返す", func() {
		dbErr := infra.WrapRepoErr("failed to mark service listings", errors.New("timeout"))
		s.listings.EXPECT().ApplyPartition(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.PartitionCounts{}, dbErr).Times(1)

		_, err := s.commands.ReclassifyListings(s.ctx, set)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}
