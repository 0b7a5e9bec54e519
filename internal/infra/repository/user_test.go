//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/tests/common/builder"

	"github.com/google/uuid"
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

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			tag:  pgconn.NewCommandTag("UPDATE 1"),
		},
		{
			name:      "database error",
			tag:       pgconn.CommandTag{},
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:     "no matching user",
			tag:      pgconn.NewCommandTag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, mock.Anything, []any{testUserID, at}).Return(tt.tag, tt.mockError)

			repo := NewUserRepository(mockDB, nil)

			err := repo.UpdateLastLogin(context.Background(), testUserID, at)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			if tt.wantKind == infra.KindNotFound {
				assert.True(t, errs.Is(err, user.ErrUserNotFound))
				assert.True(t, errs.Is(err, errs.ErrNotFound))
			}

			mockDB.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		check     func(t *testing.T, err error)
	}{
		{
			name: "success",
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "email already registered",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
				assert.True(t, errs.Is(err, user.ErrEmailTaken))
				assert.True(t, errs.Is(err, errs.ErrConflict))
			},
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, errs.Is(err, user.ErrEmailTaken))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("INSERT 0 1"), tt.mockError)

			repo := NewUserRepository(mockDB, nil)

			tt.check(t, repo.Create(context.Background(), u))
			mockDB.AssertExpectations(t)
		})
	}
}
