package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/denmor86/landed-cost/internal/models"
)

var (
	ErrNotFound             = errors.New("product not found")
	ErrServiceUnavailable   = fmt.Errorf("product service: %w", models.ErrUpstreamUnavailable)
	ErrInferenceUnavailable = fmt.Errorf("inference service: %w", models.ErrUpstreamUnavailable)
	ErrMalformedResponse    = fmt.Errorf("collaborator response: %w", models.ErrMalformedUpstreamResponse)
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

// Unwrap - превышение лимита считается временной недоступностью
func (e *RateLimitError) Unwrap() error {
	return models.ErrUpstreamUnavailable
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
