package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
)

// UserCounter is the identity store as seen by the dashboard.
type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

type ProductCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type DashboardService interface {
	GetDashboardCounts(ctx context.Context) (*models.DashboardCounts, error)
}

type dashboardService struct {
	users    UserCounter
	products ProductCounter
}

func NewDashboardService(users UserCounter, products ProductCounter) DashboardService {
	return &dashboardService{users: users, products: products}
}

// GetDashboardCounts recomputes both counts on every call.
func (s *dashboardService) GetDashboardCounts(ctx context.Context) (*models.DashboardCounts, error) {
	logger := middleware.LoggerFromContext(ctx)

	users, err := s.users.CountUsers(ctx)
	if err != nil {
		logger.Error("Failed to count users", slog.String("error", err.Error()))
		return nil, appErrors.DatabaseError("Failed to count users").WithError(err)
	}

	products, err := s.products.CountProducts(ctx)
	if err != nil {
		logger.Error("Failed to count products", slog.String("error", err.Error()))
		return nil, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	return &models.DashboardCounts{UserCount: users, ProductCount: products}, nil
}
