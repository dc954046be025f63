package casescache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

const (
	casesKeyPrefix  = "problem:cases:"
	casesExpiration = 30 * time.Minute
)

var _ secondary.CasesCache = &CasesCache{}

// CasesCache keeps a problem's parsed test cases in Redis so repeat
// submissions skip the database read. Entries expire and are invalidated on
// problem update.
type CasesCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

func New(redisClient *redis.Client, logger primary.Logger) *CasesCache {
	return &CasesCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Get returns nil, nil on a cache miss.
func (c *CasesCache) Get(ctx context.Context, problemID uuid.UUID) ([]domain.TestCase, error) {
	data, err := c.redisClient.Get(ctx, casesKey(problemID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached cases: %w", err)
	}

	var cases []domain.TestCase
	if err := json.Unmarshal([]byte(data), &cases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached cases: %w", err)
	}

	return cases, nil
}

func (c *CasesCache) Set(ctx context.Context, problemID uuid.UUID, cases []domain.TestCase) error {
	data, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("failed to marshal cases: %w", err)
	}

	if err := c.redisClient.Set(ctx, casesKey(problemID), data, casesExpiration).Err(); err != nil {
		return fmt.Errorf("failed to cache cases: %w", err)
	}

	return nil
}

func (c *CasesCache) Invalidate(ctx context.Context, problemID uuid.UUID) error {
	if err := c.redisClient.Del(ctx, casesKey(problemID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached cases: %w", err)
	}
	return nil
}

func casesKey(problemID uuid.UUID) string {
	return casesKeyPrefix + problemID.String()
}
