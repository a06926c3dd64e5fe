package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
)

// UpstreamConfig - параметры вызова внешнего сервиса
type UpstreamConfig struct {
	Name       string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// Upstream - вызов внешнего сервиса с таймаутом, автоматом защиты и повтором с backoff.
// Повторяется только UpstreamUnavailable.
type Upstream struct {
	cfg     UpstreamConfig
	breaker *gobreaker.CircuitBreaker
}

func isUnavailable(err error) bool {
	return errors.Is(err, models.ErrUpstreamUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests)
}

func InitCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		// отсутствие товара и битый ответ не означают недоступность сервиса
		IsSuccessful: func(err error) bool {
			return err == nil || !isUnavailable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

func NewUpstream(cfg UpstreamConfig) *Upstream {
	return &Upstream{cfg: cfg, breaker: InitCircuitBreaker(cfg.Name)}
}

func (u *Upstream) backoff() retry.Backoff {
	base := u.cfg.RetryBase
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	retries := u.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := retry.NewExponential(base)
	b = retry.WithJitterPercent(10, b)
	return retry.WithMaxRetries(uint64(retries), b)
}

// Call - выполняет fn с повторами, пока ошибка временная и бюджет не исчерпан
func (u *Upstream) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := 0
	err := retry.Do(ctx, u.backoff(), func(ctx context.Context) error {
		attempt++
		_, err := u.breaker.Execute(func() (interface{}, error) {
			callCtx := ctx
			if u.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
				defer cancel()
			}
			return nil, fn(callCtx)
		})
		if err == nil {
			return nil
		}
		if isUnavailable(err) && ctx.Err() == nil {
			logger.Warn("Upstream call failed, retrying", "upstream", u.cfg.Name, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && isUnavailable(err) && !errors.Is(err, models.ErrUpstreamUnavailable) {
		return fmt.Errorf("%s: %w: %v", u.cfg.Name, models.ErrUpstreamUnavailable, err)
	}
	return err
}
