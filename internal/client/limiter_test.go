package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimiter_BlockFor(t *testing.T) {
	testCases := []struct {
		Name          string
		RPS           int
		Block         time.Duration
		Calls         int
		ExpectedError error
	}{
		{
			Name:          "Error. Burst tokens are not served during Retry-After #1",
			RPS:           3,
			Block:         time.Second,
			Calls:         5,
			ExpectedError: context.DeadlineExceeded,
		},
		{
			Name:          "Error. Unlimited client also waits for Retry-After #2",
			RPS:           0,
			Block:         time.Second,
			Calls:         1,
			ExpectedError: context.DeadlineExceeded,
		},
		{
			Name:  "Success. Requests pass after the pause #3",
			RPS:   3,
			Block: 20 * time.Millisecond,
			Calls: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rl := NewRateLimiter(tc.RPS)
			rl.BlockFor(tc.Block)

			passed := 0
			for i := 0; i < tc.Calls; i++ {
				ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
				err := rl.Wait(ctx)
				cancel()
				if err == nil {
					passed++
					continue
				}
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
			}
			if tc.ExpectedError != nil && passed != 0 {
				t.Errorf("Expected no requests during Retry-After, passed: %d", passed)
			}
			if tc.ExpectedError == nil && passed != tc.Calls {
				t.Errorf("Expected %d requests after the pause, passed: %d", tc.Calls, passed)
			}
		})
	}
}

func TestRateLimiter_ShorterBlockKeepsLonger(t *testing.T) {
	rl := NewRateLimiter(0)
	rl.BlockFor(time.Second)
	rl.BlockFor(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := rl.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected the longer pause to stay in force, got: '%v'", err)
	}
}
