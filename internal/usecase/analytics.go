package usecase

import (
	"context"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
)

// AnalyticsUseCase is the read-side rollup over order storage.
type AnalyticsUseCase struct {
	orders repository.OrderRepository
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(orders repository.OrderRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{orders: orders}
}

// TodayStats aggregates orders created on the current calendar day. A day
// with no orders yields zeros, not an error.
func (u *AnalyticsUseCase) TodayStats(ctx context.Context) (*model.DayStats, error) {
	return u.orders.TodayStats(ctx)
}
