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

	"hof-drops/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ProductFixture struct {
	Name             string
	PriceCents       int64
	IsLimitedEdition bool
	ReleaseDate      *time.Time
	DropEndDate      *time.Time
}

func CreateTestProduct(t *testing.T, db DBLike, p ProductFixture) uuid.UUID {
	t.Helper()

	if p.Name == "" {
		p.Name = "Test Product"
	}
	productID := uuid.New()
	slug := strings.ToLower(strings.ReplaceAll(p.Name, " ", "-")) + "-" + productID.String()[:8]

	_, err := db.Exec(context.Background(), `
		INSERT INTO products (id, name, slug, price_cents, is_limited_edition, release_date, drop_end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		productID, p.Name, slug, p.PriceCents, p.IsLimitedEdition, p.ReleaseDate, p.DropEndDate)
	require.NoError(t, err)

	return productID
}

// CreateLiveDrop inserts a limited-edition product whose window contains now.
func CreateLiveDrop(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	return CreateTestProduct(t, db, ProductFixture{
		Name:             name,
		PriceCents:       priceCents,
		IsLimitedEdition: true,
		ReleaseDate:      ptr.Of(time.Now().Add(-time.Hour)),
		DropEndDate:      ptr.Of(time.Now().Add(24 * time.Hour)),
	})
}

func CreateTestVariant(t *testing.T, db DBLike, productID uuid.UUID, size string, inventory int32) uuid.UUID {
	t.Helper()

	variantID := uuid.New()
	sku := "SKU-" + strings.ToUpper(variantID.String()[:8])

	_, err := db.Exec(context.Background(), `
		INSERT INTO product_variants (id, product_id, sku, size, inventory)
		VALUES ($1, $2, $3, $4, $5)`,
		variantID, productID, sku, size, inventory)
	require.NoError(t, err)

	return variantID
}

func VariantInventory(t *testing.T, db DBLike, variantID uuid.UUID) int32 {
	t.Helper()

	var inventory int32
	err := db.QueryRow(context.Background(), "SELECT inventory FROM product_variants WHERE id = $1", variantID).Scan(&inventory)
	require.NoError(t, err)
	return inventory
}

func ActiveHoldCount(t *testing.T, db DBLike, variantID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM cart_reservations WHERE variant_id = $1 AND is_active AND expires_at > now()", variantID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireHolds moves every hold of the session into the past.
func ExpireHolds(t *testing.T, db DBLike, sessionID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE cart_reservations SET expires_at = now() - interval '1 minute' WHERE session_id = $1", sessionID)
	require.NoError(t, err)
}

func QueuedJobCount(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = 'queued'", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

func OrderStatus(t *testing.T, db DBLike, orderNumber string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM orders WHERE order_number = $1", orderNumber).Scan(&status)
	require.NoError(t, err)
	return status
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
