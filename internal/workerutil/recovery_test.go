package workerutil

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunWithPanicRecoveryNormalExit(t *testing.T) {
	var wg sync.WaitGroup
	var runs atomic.Int32

	RunWithPanicRecovery(context.Background(), "normal", &wg, func(ctx context.Context) {
		runs.Add(1)
	}, RecoveryOptions{InitialBackoff: time.Millisecond, MaxRetries: 5})

	wg.Wait()
	if got := runs.Load(); got != 1 {
		t.Fatalf("worker ran %d times, want 1 (no restart after normal exit)", got)
	}
}

func TestRunWithPanicRecoveryRestartsUntilSuccess(t *testing.T) {
	var wg sync.WaitGroup
	var runs atomic.Int32
	var panics atomic.Int32

	RunWithPanicRecovery(context.Background(), "flaky", &wg, func(ctx context.Context) {
		if runs.Add(1) < 3 {
			panic("transition worker blew up")
		}
	}, RecoveryOptions{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		MaxRetries:     5,
		OnPanic:        func(string, int) { panics.Add(1) },
	})

	wg.Wait()
	if got := runs.Load(); got != 3 {
		t.Fatalf("worker ran %d times, want 3", got)
	}
	if got := panics.Load(); got != 2 {
		t.Fatalf("OnPanic called %d times, want 2", got)
	}
}

func TestRunWithPanicRecoveryFatalAfterMaxRetries(t *testing.T) {
	var wg sync.WaitGroup
	var fatalWorker string
	var fatalRetries int

	RunWithPanicRecovery(context.Background(), "doomed", &wg, func(ctx context.Context) {
		panic("always")
	}, RecoveryOptions{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
		MaxRetries:     3,
		OnFatal: func(worker string, maxRetries int) {
			fatalWorker = worker
			fatalRetries = maxRetries
		},
	})

	wg.Wait()
	if fatalWorker != "doomed" {
		t.Fatalf("OnFatal worker = %q, want %q", fatalWorker, "doomed")
	}
	if fatalRetries != 3 {
		t.Fatalf("OnFatal maxRetries = %d, want 3", fatalRetries)
	}
}

func TestRunWithPanicRecoveryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var runs atomic.Int32

	RunWithPanicRecovery(ctx, "cancelled", &wg, func(ctx context.Context) {
		runs.Add(1)
		cancel()
		panic("panic after cancel")
	}, RecoveryOptions{InitialBackoff: time.Millisecond, MaxRetries: 10})

	wg.Wait()
	if got := runs.Load(); got != 1 {
		t.Fatalf("worker ran %d times after cancel, want 1", got)
	}
}

func TestNextBackoff(t *testing.T) {
	tests := []struct {
		name    string
		current time.Duration
		max     time.Duration
		want    time.Duration
	}{
		{name: "doubles", current: 100 * time.Millisecond, max: time.Second, want: 200 * time.Millisecond},
		{name: "caps at max", current: 800 * time.Millisecond, max: time.Second, want: time.Second},
		{name: "overflow clamps to max", current: time.Duration(1) << 62, max: time.Second, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextBackoff(tt.current, tt.max); got != tt.want {
				t.Fatalf("nextBackoff(%v, %v) = %v, want %v", tt.current, tt.max, got, tt.want)
			}
		})
	}
}

func TestRecoveryOptionsApplyDefaults(t *testing.T) {
	opts := RecoveryOptions{}.applyDefaults()
	if opts.InitialBackoff != defaultInitialBackoff {
		t.Errorf("InitialBackoff = %v, want %v", opts.InitialBackoff, defaultInitialBackoff)
	}
	if opts.MaxBackoff != defaultMaxBackoff {
		t.Errorf("MaxBackoff = %v, want %v", opts.MaxBackoff, defaultMaxBackoff)
	}
	if opts.MaxRetries != defaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", opts.MaxRetries, defaultMaxRetries)
	}

	swapped := RecoveryOptions{InitialBackoff: time.Second, MaxBackoff: time.Millisecond}.applyDefaults()
	if swapped.MaxBackoff != time.Second {
		t.Errorf("contradictory MaxBackoff not promoted: got %v, want %v", swapped.MaxBackoff, time.Second)
	}
}
