// Package leaderboard keeps the best-score ranking. Redis holds a sorted set
// updated on every accepted submission; when Redis is disabled the ranking is
// read straight from the database.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"plantbuilder-server/internal/player"
	sharedredis "plantbuilder-server/internal/shared/redis"

	"github.com/redis/go-redis/v9"
)

const rankingKey = "plantbuilder:leaderboard"

type Service struct {
	cache   *sharedredis.Client
	players *player.Service
	logger  *slog.Logger
}

// NewService accepts a nil cache; every read then falls through to the
// database.
func NewService(cache *sharedredis.Client, players *player.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing leaderboard service", "redis_enabled", cache != nil)

	return &Service{
		cache:   cache,
		players: players,
		logger:  logger,
	}
}

// RecordScore updates the cached ranking for a player. ZAddGT keeps the
// stored score monotone: a replayed lower score never lowers the rank.
func (s *Service) RecordScore(ctx context.Context, phone string, bestScore int) error {
	if s.cache == nil {
		return nil
	}

	err := s.cache.ZAddGT(ctx, rankingKey, redis.Z{
		Score:  float64(bestScore),
		Member: phone,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to update leaderboard cache: %w", err)
	}

	return nil
}

// Top returns the highest-ranked players. Cache misses on individual entries
// fall back to the phone number as the display name rather than failing the
// whole board.
func (s *Service) Top(ctx context.Context, limit int) ([]player.Standing, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.cache == nil {
		return s.players.TopByBestScore(ctx, limit)
	}

	entries, err := s.cache.ZRevRangeWithScores(ctx, rankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		s.logger.Warn("Leaderboard cache read failed, falling back to database", "error", err)
		return s.players.TopByBestScore(ctx, limit)
	}

	standings := make([]player.Standing, 0, len(entries))
	for _, entry := range entries {
		phone, ok := entry.Member.(string)
		if !ok {
			continue
		}

		standing := player.Standing{
			Phone:       phone,
			DisplayName: phone,
			BestScore:   int(entry.Score),
		}
		if p, err := s.players.GetByPhone(ctx, phone); err == nil {
			standing.DisplayName = p.DisplayName
		}
		standings = append(standings, standing)
	}

	return standings, nil
}
