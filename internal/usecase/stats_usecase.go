package usecase

import (
	"context"
	"time"

	"ggenius-website/internal/domain"
)

const apiVersion = "v1"

// Platform counters shown on the landing page. They are placeholders until
// the platform has a data source to report from.
var platformStats = domain.PlatformStats{
	RegisteredUsers: 1250,
	TournamentsHeld: 47,
	TotalMatches:    15420,
	PrizePool:       "$125,000",
	AIAnalyses:      89340,
}

type statsUsecase struct {
	version   string
	buildDate string
	now       func() time.Time
}

func NewStatsUsecase(version, buildDate string) domain.StatsUsecase {
	return &statsUsecase{
		version:   version,
		buildDate: buildDate,
		now:       time.Now,
	}
}

func (u *statsUsecase) Stats(ctx context.Context) domain.PlatformStats {
	stats := platformStats
	stats.LastUpdated = u.now().Format(time.RFC3339)
	return stats
}

func (u *statsUsecase) Version(ctx context.Context) domain.VersionInfo {
	return domain.VersionInfo{
		Version:    u.version,
		APIVersion: apiVersion,
		BuildDate:  u.buildDate,
	}
}
