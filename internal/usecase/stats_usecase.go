package usecase

import (
	"context"

	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/logger"
)

type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
	}
}

type CollectionStat struct {
	Count int64  `json:"count"`
	Error string `json:"error,omitempty"`
}

type StatsReport struct {
	Games   CollectionStat `json:"games"`
	Reviews CollectionStat `json:"reviews"`
	Users   CollectionStat `json:"users"`
	Healthy bool           `json:"healthy"`
}

// GetStats counts the primary collections. A failed count degrades to a
// per-collection error in the report instead of failing the whole call.
func (uc *StatsUseCase) GetStats(ctx context.Context) *StatsReport {
	report := &StatsReport{Healthy: true}

	report.Games = uc.countCollection(ctx, "games")
	report.Reviews = uc.countCollection(ctx, "reviews")
	report.Users = uc.countCollection(ctx, "users")

	if report.Games.Error != "" || report.Reviews.Error != "" || report.Users.Error != "" {
		report.Healthy = false
	}

	return report
}

func (uc *StatsUseCase) countCollection(ctx context.Context, name string) CollectionStat {
	count, err := uc.statsRepo.Count(ctx, name)
	if err != nil {
		logger.Warn("Failed to count %s: %v", name, err)
		return CollectionStat{Error: err.Error()}
	}
	return CollectionStat{Count: count}
}
