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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultDepartment = "General Medicine"

// DBLike is satisfied by a pool, a connection and a transaction, so
// fixtures can run inside a test's own transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestDepartment(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO departments (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestDoctor inserts a doctor in the default department. userID may be uuid.Nil.
func CreateTestDoctor(t *testing.T, db DBLike, name string, userID uuid.UUID) int64 {
	t.Helper()

	deptID := CreateTestDepartment(t, db, DefaultDepartment)
	var owner any
	if userID != uuid.Nil {
		owner = userID
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO doctors (name, specialization, department_id, user_id)
		VALUES ($1, 'General', $2, $3)
		RETURNING id`, name, deptID, owner).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestPatient inserts a patient profile. userID may be uuid.Nil.
func CreateTestPatient(t *testing.T, db DBLike, name, email string, userID uuid.UUID) int64 {
	t.Helper()

	var owner any
	if userID != uuid.Nil {
		owner = userID
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO patients (name, email, user_id) VALUES ($1, $2, $3)
		RETURNING id`, name, email, owner).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestSlot(t *testing.T, db DBLike, providerID int64, start time.Time, minutes int, booked bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO slots (provider_id, start_at, end_at, price_cents, is_booked, calendar_month)
		VALUES ($1, $2, $3, 5000, $4, $5)
		RETURNING id`,
		providerID, start, start.Add(time.Duration(minutes)*time.Minute), booked, start.Format("2006-01")).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO departments (name, description) VALUES
		    ($1, 'Default department for test doctors')
		ON CONFLICT (name) DO NOTHING;
	`, DefaultDepartment)
	if err != nil {
		return err
	}

	return nil
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
