package retry

import (
	"context"
	"fmt"
	"time"
)

// Executor runs an operation, retrying transient failures.
// WithOnRetry returns a copy, so one Executor may be shared.
type Executor struct {
	classifier ErrorClassifier
	strategy   BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a retry executor.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier ErrorClassifier, strategy BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor that calls callback before each wait.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation until it succeeds, fails fatally or retries are
// exhausted, and returns the last error. When ctx ends during a wait the
// context error is returned with the last operation error attached.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)
	maxAttempts := e.strategy.MaxAttempts()

	for attempt := 0; lastErr != nil && e.classifier.IsTransient(lastErr); attempt++ {
		if maxAttempts >= 0 && attempt >= maxAttempts {
			break
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
		case <-timer.C:
		}

		lastErr = operation(ctx)
	}
	return lastErr
}
