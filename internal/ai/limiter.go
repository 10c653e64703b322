package ai

import (
	"context"
	"fmt"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// LimitedGenerator caps calls to the wrapped generator per minute, shared by
// every server instance using the same redis.
type LimitedGenerator struct {
	next          Generator
	limiter       RequestRateLimiter
	key           string
	allowedPerMin int
}

func NewLimitedGenerator(next Generator, limiter RequestRateLimiter, key string, allowedPerMin int) *LimitedGenerator {
	return &LimitedGenerator{
		next:          next,
		limiter:       limiter,
		key:           key,
		allowedPerMin: allowedPerMin,
	}
}

func (g *LimitedGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	res, err := g.limiter.Allow(ctx, g.key, redis_rate.PerMinute(g.allowedPerMin))
	if err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	if res.Allowed <= 0 {
		log.Debugf("ai rate limit hit, retry after %f seconds", res.RetryAfter.Seconds())
		return "", ErrRateLimited
	}
	return g.next.Generate(ctx, prompt)
}
