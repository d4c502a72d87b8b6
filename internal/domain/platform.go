package domain

import "context"

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string `json:"status" example:"healthy"`
	Version     string `json:"version" example:"2.0.0"`
	Timestamp   string `json:"timestamp" example:"2026-01-01T12:00:00Z"`
	StaticFiles bool   `json:"static_files"`
	Templates   bool   `json:"templates"`
}

// PlatformStats is the body of GET /api/stats.
type PlatformStats struct {
	RegisteredUsers int    `json:"registered_users" example:"1250"`
	TournamentsHeld int    `json:"tournaments_held" example:"47"`
	TotalMatches    int    `json:"total_matches" example:"15420"`
	PrizePool       string `json:"prize_pool" example:"$125,000"`
	AIAnalyses      int    `json:"ai_analyses" example:"89340"`
	LastUpdated     string `json:"last_updated" example:"2026-01-01T12:00:00Z"`
}

// VersionInfo is the body of GET /api/version.
type VersionInfo struct {
	Version    string `json:"version" example:"2.0.0"`
	APIVersion string `json:"api_version" example:"v1"`
	BuildDate  string `json:"build_date" example:"2026-01-01"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type StatsUsecase interface {
	Stats(ctx context.Context) PlatformStats
	Version(ctx context.Context) VersionInfo
}
