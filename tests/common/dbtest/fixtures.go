//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCategory(t *testing.T, db DBLike, name, typ string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	err := db.QueryRow(ctx,
		"INSERT INTO categories (id, name, type) VALUES ($1, $2, $3) ON CONFLICT (name) DO UPDATE SET type = EXCLUDED.type RETURNING id",
		id, name, typ).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestListing(t *testing.T, db DBLike, categoryID uuid.UUID, title, typ string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO listings (id, category_id, title, type) VALUES ($1, $2, $3, $4)",
		id, categoryID, title, typ)
	require.NoError(t, err)

	return id
}

func ListingType(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var typ string
	err := db.QueryRow(context.Background(), "SELECT type FROM listings WHERE id = $1", id).Scan(&typ)
	require.NoError(t, err)
	return typ
}

func CategoryType(t *testing.T, db DBLike, name string) string {
	t.Helper()

	var typ string
	err := db.QueryRow(context.Background(), "SELECT type FROM categories WHERE name = $1", name).Scan(&typ)
	require.NoError(t, err)
	return typ
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
