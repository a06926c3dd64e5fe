package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничение частоты запросов и пауза по Retry-After
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	blockedUntil time.Time
}

// NewRateLimiter - ограничитель запросов в секунду, rps <= 0 снимает ограничение
func NewRateLimiter(rps int) *RateLimiter {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = rps
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait - ждёт окончания паузы Retry-After, затем свободного токена
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	until := rl.blockedUntil
	rl.mu.Unlock()

	if pause := time.Until(until); pause > 0 {
		timer := time.NewTimer(pause)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return rl.limiter.Wait(ctx)
}

// BlockFor - приостанавливает запросы на время из Retry-After, более ранняя пауза не сокращает текущую
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	until := time.Now().Add(duration)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
