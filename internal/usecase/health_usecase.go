package usecase

import (
	"context"
	"time"

	"ggenius-website/internal/domain"
)

const healthStatusHealthy = "healthy"

type healthUsecase struct {
	version      string
	staticDir    string
	templatesDir string
	now          func() time.Time
}

// NewHealthUsecase reports liveness. The directory flags are checked on every
// call so they follow deployments that add or remove assets.
func NewHealthUsecase(version, staticDir, templatesDir string) domain.HealthUsecase {
	return &healthUsecase{
		version:      version,
		staticDir:    staticDir,
		templatesDir: templatesDir,
		now:          time.Now,
	}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:      healthStatusHealthy,
		Version:     u.version,
		Timestamp:   u.now().Format(time.RFC3339),
		StaticFiles: dirExists(u.staticDir),
		Templates:   dirExists(u.templatesDir),
	}
}
