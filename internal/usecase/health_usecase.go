package usecase

import (
	"context"
	"time"

	"go-resume-collector/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) *domain.HealthStatus
}

type healthUsecase struct {
	version string
}

func NewHealthUsecase(version string) HealthUsecase {
	return &healthUsecase{version: version}
}

func (u *healthUsecase) Check(ctx context.Context) *domain.HealthStatus {
	return &domain.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   u.version,
		Message:   "Service is running",
	}
}
