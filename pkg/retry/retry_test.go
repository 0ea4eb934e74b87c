package retry

import (
	"errors"
	"testing"
	"time"

	errs "swarmscraper/pkg/errors"
)

func testConfig(maxAttempts int) *Config {
	return &Config{
		MaxAttempts: maxAttempts,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		RetryIf:     DefaultRetryIf,
		sleep:       func(time.Duration) {},
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(func() error {
		calls++
		return nil
	}, testConfig(3))

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestDoRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Do(func() error {
		calls++
		if calls < 3 {
			return &errs.Error{Type: errs.ErrorTypeServerError, Message: "server error", Code: 503}
		}
		return nil
	}, testConfig(5))

	if err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(func() error {
		calls++
		return &errs.Error{Type: errs.ErrorTypeNetwork, Message: "timeout"}
	}, testConfig(3))

	if err == nil {
		t.Fatal("Expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestDoDoesNotRetryAuthErrors(t *testing.T) {
	calls := 0
	authErr := &errs.Error{Type: errs.ErrorTypeAuth, Message: "token expired", Code: 401}
	err := Do(func() error {
		calls++
		return authErr
	}, testConfig(5))

	if !errors.Is(err, authErr) {
		t.Fatalf("Expected the auth error to surface unchanged, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly 1 call for a non-retryable error, got %d", calls)
	}
}

func TestDoWithResult(t *testing.T) {
	calls := 0
	result, err := DoWithResult(func() (int, error) {
		calls++
		if calls < 2 {
			return 0, &errs.Error{Type: errs.ErrorTypeNetwork, Message: "flaky"}
		}
		return 42, nil
	}, testConfig(3))

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result != 42 {
		t.Errorf("Expected result 42, got %d", result)
	}
}

func TestExponentialBackoffGrows(t *testing.T) {
	eb := &ExponentialBackoff{
		BaseDelay:  time.Second,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
	}

	if d := eb.NextDelay(1); d != time.Second {
		t.Errorf("Expected 1s for attempt 1, got %v", d)
	}
	if d := eb.NextDelay(2); d != 2*time.Second {
		t.Errorf("Expected 2s for attempt 2, got %v", d)
	}
	if d := eb.NextDelay(10); d != 10*time.Second {
		t.Errorf("Expected delay capped at 10s, got %v", d)
	}
}
