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

// Fixed IDs so tests can reference seeded services without lookups.
var (
	ServiceKnotlessID = uuid.MustParse("6a1f0a4e-0001-4c8f-9a30-aaaaaaaaaaaa")
	ServiceManicureID = uuid.MustParse("6a1f0a4e-0002-4c8f-9a30-aaaaaaaaaaaa")
)

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name, description, base_price, duration_min, category) VALUES
		    ($1, 'Knotless Braids', 'Medium knotless braids', 1500, 240, 'hair'),
		    ($2, 'Gel Manicure', 'Gel polish manicure', 800, 60, 'nails')
		ON CONFLICT (id) DO NOTHING;
	`, ServiceKnotlessID, ServiceManicureID)
	if err != nil {
		return err
	}

	// Open Monday through Saturday, closed Sunday.
	_, err = pool.Exec(ctx, `
		INSERT INTO availability_rules (weekday, start_time, end_time, active)
		SELECT d, '09:00', '18:00', d <> 0 FROM generate_series(0, 6) AS d
		ON CONFLICT (weekday) DO NOTHING;
	`)
	return err
}

func CreateTestBooking(t *testing.T, db DBLike, serviceID uuid.UUID, slotAt time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, service_id, slot_at, client_name, client_phone, client_email,
		                      payment_option, total_ksh, deposit_ksh, status)
		VALUES ($1, $2, $3, 'Test Client', '254712345678', 'client@example.com', 'deposit', 3000, 900, $4)`,
		bookingID, serviceID, slotAt, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
