package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"newsdesk/internal/resilience/circuitbreaker"
)

func TestExecutePassesThrough(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.BlobStoreConfig())

	got, err := cb.Execute(func() (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Execute() = %v, want ok", got)
	}
}

func TestTripsAfterRepeatedFailures(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      3,
	})

	boom := errors.New("store down")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
			t.Fatalf("call %d: error = %v, want %v", i, err, boom)
		}
	}

	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open after threshold failures", cb.State())
	}

	_, err := cb.Execute(func() (any, error) { return "unreachable", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState while open", err)
	}
}
