//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow feeds fixed column values into Scan.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *pgtype.Timestamptz:
			*p = r.values[i].(pgtype.Timestamptz)
		}
	}
	return nil
}

func userRow(id uuid.UUID, email, role string, active bool, lastLogin pgtype.Timestamptz, hash string) stubRow {
	created := pgtype.Timestamptz{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	return stubRow{values: []any{id, email, role, active, lastLogin, created, hash}}
}

func TestFindByEmail(t *testing.T) {
	id := uuid.New()
	tokyo := time.FixedZone("JST", 9*60*60)
	login := pgtype.Timestamptz{Time: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Valid: true}

	tests := []struct {
		name      string
		row       stubRow
		wantHash  string
		wantLogin bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "success - active user",
			row:       userRow(id, "alice@example.com", "PATIENT", true, login, "hash"),
			wantHash:  "hash",
			wantLogin: true,
		},
		{
			name:     "success - inactive user without login",
			row:      userRow(id, "alice@example.com", "PATIENT", false, pgtype.Timestamptz{}, "hash2"),
			wantHash: "hash2",
		},
		{
			name:     "user not found",
			row:      stubRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			row:      stubRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("QueryRow", mock.Anything, mock.Anything, []any{"alice@example.com"}).Return(tt.row)

			readStore := NewUserReadStore(mockDB, tokyo, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), "alice@example.com")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				if tt.wantKind == infra.KindNotFound {
					assert.True(t, errs.Is(err, user.ErrUserNotFound))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHash, hash)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, "alice@example.com", view.Email)
			assert.Equal(t, tokyo, view.CreatedAt.Location())
			if tt.wantLogin {
				require.NotNil(t, view.LastLogin)
				assert.Equal(t, 9, view.LastLogin.Hour())
			} else {
				assert.Nil(t, view.LastLogin)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, mock.Anything, []any{id}).
			Return(userRow(id, "doc@example.com", "DOCTOR", true, pgtype.Timestamptz{}, "hash"))

		view, err := NewUserReadStore(mockDB, time.UTC, nil).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "DOCTOR", view.Role)
		assert.True(t, view.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, mock.Anything, []any{id}).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewUserReadStore(mockDB, time.UTC, nil).FindByID(context.Background(), id)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
