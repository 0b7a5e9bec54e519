package queries

import (
	"context"

	"clinic-scheduler/internal/domain/user"
)

type StatsReadStore interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type AdminQueries interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context, role *user.Role) ([]*AuthorizedUserView, error)
}

type adminQueriesImpl struct {
	stats StatsReadStore
	users UserReadStore
}

func NewAdminQueries(stats StatsReadStore, users UserReadStore) AdminQueries {
	return &adminQueriesImpl{stats: stats, users: users}
}

func (q *adminQueriesImpl) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return q.stats.DashboardStats(ctx)
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context, role *user.Role) ([]*AuthorizedUserView, error) {
	return q.users.List(ctx, role)
}
