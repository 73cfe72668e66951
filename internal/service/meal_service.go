package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	"github.com/gaon-hs/gaon-portal-api/internal/neis"
)

// MealFeed is the upstream slice the meal assembler needs.
type MealFeed interface {
	Meals(ctx context.Context, date string) neis.MealsResult
}

// MealService wraps the upstream meal set with the requested date.
type MealService struct {
	feed   MealFeed
	logger *zap.Logger
}

func NewMealService(feed MealFeed, logger *zap.Logger) *MealService {
	return &MealService{feed: feed, logger: logger}
}

// Meals returns the three-slot structure for date (YYYYMMDD). Degraded
// upstreams still yield a structurally valid all-empty payload.
func (s *MealService) Meals(ctx context.Context, date string) (dto.MealsResponse, bool) {
	result := s.feed.Meals(ctx, date)
	if result.Degraded && s.logger != nil {
		s.logger.Warn("meal upstream degraded", zap.String("date", date), zap.Error(result.Cause))
	}
	return dto.MealsResponse{Date: date, Meals: result.Set}, result.Degraded
}
