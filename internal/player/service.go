package player

import (
	"context"
	"log/slog"

	"plantbuilder-server/internal/shared/errors"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing player service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Register(ctx context.Context, phone, displayName string) (*Player, error) {
	if phone == "" {
		return nil, errors.Validation("phone number is required")
	}
	if displayName == "" {
		displayName = "Builder " + phone
	}
	return s.repo.Create(ctx, phone, displayName)
}

func (s *Service) GetByPhone(ctx context.Context, phone string) (*Player, error) {
	if phone == "" {
		return nil, errors.Validation("phone number is required")
	}
	return s.repo.GetByPhone(ctx, phone)
}

func (s *Service) TopByBestScore(ctx context.Context, limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.TopByBestScore(ctx, limit)
}
