package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithExponentialBackoff_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return nil
	}

	ctx := context.Background()
	err := WithExponentialBackoff(ctx, operation)

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	ctx := context.Background()
	err := WithExponentialBackoff(ctx, operation, WithInitialDelay(10*time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error after retries, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_MaxRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("persistent error")
	}

	ctx := context.Background()
	maxRetries := 3
	err := WithExponentialBackoff(ctx, operation,
		WithMaxRetries(maxRetries),
		WithInitialDelay(10*time.Millisecond))

	if err == nil {
		t.Error("Expected error after max retries, got nil")
	}
	// MaxRetries counts retries after the first attempt.
	expectedAttempts := maxRetries + 1
	if attempts != expectedAttempts {
		t.Errorf("Expected %d attempts (1 + %d retries), got: %d", expectedAttempts, maxRetries, attempts)
	}
}

func TestWithExponentialBackoff_FatalNotRetried(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return Fatal(errors.New("bad request"))
	}

	ctx := context.Background()
	err := WithExponentialBackoff(ctx, operation, WithInitialDelay(10*time.Millisecond))

	if err == nil {
		t.Error("Expected error, got nil")
	}
	if attempts != 1 {
		t.Errorf("Expected fatal error to stop after 1 attempt, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("keep going")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithExponentialBackoff(ctx, operation, WithInitialDelay(time.Minute))

	if err == nil {
		t.Error("Expected context error, got nil")
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before cancellation, got: %d", attempts)
	}
}

func TestIsFatal(t *testing.T) {
	t.Parallel()
	if IsFatal(errors.New("plain")) {
		t.Error("plain error reported as fatal")
	}
	if !IsFatal(Fatal(errors.New("wrapped"))) {
		t.Error("fatal error not detected")
	}
	if Fatal(nil) != nil {
		t.Error("Fatal(nil) should be nil")
	}
}
