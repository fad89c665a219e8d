//go:build unit

package repository

import (
	"context"
	"testing"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBTX implements db.DBTX
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type fakeRow struct {
	inserted bool
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.inserted
	return nil
}

// fakeRows serves (type, count) pairs to CountByType.
type fakeRows struct {
	types  []string
	counts []int64
	pos    int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.types) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.types[r.pos-1]
	*(dest[1].(*int64)) = r.counts[r.pos-1]
	return nil
}

func TestCategoryUpsert(t *testing.T) {
	c, err := category.NewCategory("DJ", category.TypeService)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      fakeRow
		want     shared.UpsertOutcome
		wantKind infra.RepositoryErrorKind
	}{
		{name: "inserted", row: fakeRow{inserted: true}, want: shared.UpsertCreated},
		{name: "type overwritten", row: fakeRow{inserted: false}, want: shared.UpsertUpdated},
		{name: "already up to date", row: fakeRow{err: pgx.ErrNoRows}, want: shared.UpsertUnchanged},
		{name: "database error", row: fakeRow{err: assert.AnError}, wantKind: infra.KindDBFailure},
		{name: "unique violation", row: fakeRow{err: &pgconn.PgError{Code: "23505"}}, wantKind: infra.KindDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, upsertCategorySQL, []interface{}{c.ID(), "DJ", "SERVICE"}).Return(tt.row)

			got, err := NewCategoryRepository().Upsert(context.Background(), dbtx, c)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			dbtx.AssertExpectations(t)
		})
	}
}

func TestListingApplyPartition(t *testing.T) {
	names := []string{"DJ", "Buffet"}

	t.Run("success", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, markServiceListingsSQL, []interface{}{names}).
			Return(pgconn.NewCommandTag("UPDATE 3"), nil).Once()
		dbtx.On("Exec", mock.Anything, markSpaceListingsSQL, []interface{}{names}).
			Return(pgconn.NewCommandTag("UPDATE 7"), nil).Once()

		counts, err := NewListingRepository().ApplyPartition(context.Background(), dbtx, names)
		require.NoError(t, err)
		assert.Equal(t, shared.PartitionCounts{MarkedService: 3, MarkedSpace: 7}, counts)
		dbtx.AssertExpectations(t)
	})

	t.Run("service update fails before space update", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, markServiceListingsSQL, mock.Anything).
			Return(pgconn.CommandTag{}, assert.AnError).Once()

		_, err := NewListingRepository().ApplyPartition(context.Background(), dbtx, names)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		dbtx.AssertNotCalled(t, "Exec", mock.Anything, markSpaceListingsSQL, mock.Anything)
	})
}

func TestListingCountByType(t *testing.T) {
	t.Run("missing types count as zero", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Query", mock.Anything, countListingsByTypeSQL, mock.Anything).
			Return(&fakeRows{types: []string{"SERVICE"}, counts: []int64{4}}, nil).Once()

		got, err := NewListingRepository().CountByType(context.Background(), dbtx)
		require.NoError(t, err)
		assert.Equal(t, map[listing.Type]int64{listing.TypeService: 4, listing.TypeSpace: 0}, got)
	})

	t.Run("unknown stored type is rejected", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Query", mock.Anything, countListingsByTypeSQL, mock.Anything).
			Return(&fakeRows{types: []string{"SPACE", "EQUIPMENT"}, counts: []int64{2, 1}}, nil).Once()

		_, err := NewListingRepository().CountByType(context.Background(), dbtx)
		require.Error(t, err)
		assert.ErrorIs(t, err, listing.ErrInvalidType)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
