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

	"pet-adoption/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		defaultHash, err = password.HashPassword(DefaultPassword)
		require.NoError(t, err)
	})
	return defaultHash
}

// CreateAccount inserts an adopter or owner whose password is DefaultPassword.
func CreateAccount(t *testing.T, db DBLike, kind, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO accounts (id, kind, name, email, phone, password_hash) VALUES ($1, $2, $3, $4, '555-0100', $5)`,
		id, kind, name, strings.ToLower(email), defaultPasswordHash(t))
	require.NoError(t, err)
	return id
}

func CreatePet(t *testing.T, db DBLike, ownerID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO pets (id, owner_id, name, species, breed, age, price_cents) VALUES ($1, $2, $3, 'Dog', 'Beagle', 3, $4)`,
		id, ownerID, name, priceCents)
	require.NoError(t, err)
	return id
}

func CreateRequest(t *testing.T, db DBLike, adopterID, petID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO adoption_requests (id, adopter_id, pet_id, status) VALUES ($1, $2, $3, $4)`,
		id, adopterID, petID, status)
	require.NoError(t, err)
	return id
}

// CreateHistory inserts an adoption_history row without a payment.
func CreateHistory(t *testing.T, db DBLike, adopterID, ownerID, petID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO adoption_history (id, adopter_id, pet_id, owner_id) VALUES ($1, $2, $3, $4)`,
		id, adopterID, petID, ownerID)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func PetStatus(t *testing.T, db DBLike, petID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), `SELECT status FROM pets WHERE id = $1`, petID).Scan(&status))
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
