package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"
)

// recorder collects indicator transitions with their timestamps.
type recorder struct {
	mu     sync.Mutex
	states []State
	times  []time.Time
}

func (r *recorder) record(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
	r.times = append(r.times, time.Now())
}

func (r *recorder) snapshot() ([]State, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...), append([]time.Time(nil), r.times...)
}

func waitForState(t *testing.T, ind *Indicator, want State, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if ind.State() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("indicator did not reach %s within %v", want, timeout)
}

func TestIndicatorDefaultWindow(t *testing.T) {
	ind := NewIndicator(0, nil)
	if ind.Window() != 2000*time.Millisecond {
		t.Errorf("window = %v, want 2s", ind.Window())
	}
	if ind.State() != Idle {
		t.Errorf("initial state = %s, want idle", ind.State())
	}
}

func TestIndicatorSingleTrigger(t *testing.T) {
	const window = 60 * time.Millisecond
	rec := &recorder{}
	ind := NewIndicator(window, rec.record)
	defer ind.Close()

	start := time.Now()
	ind.Trigger()
	if ind.State() != Copied {
		t.Fatalf("state after trigger = %s, want copied", ind.State())
	}

	waitForState(t, ind, Idle, 2*time.Second)

	states, times := rec.snapshot()
	if len(states) != 2 || states[0] != Copied || states[1] != Idle {
		t.Fatalf("transitions = %v, want [copied idle]", states)
	}
	if elapsed := times[1].Sub(start); elapsed < window {
		t.Errorf("reset after %v, want at least %v", elapsed, window)
	}
}

func TestIndicatorRetriggerExtendsWindow(t *testing.T) {
	const window = 200 * time.Millisecond
	rec := &recorder{}
	ind := NewIndicator(window, rec.record)
	defer ind.Close()

	ind.Trigger()
	time.Sleep(window / 2)
	second := time.Now()
	ind.Trigger()

	// Past the first window, still within the second.
	time.Sleep(window/2 + window/4)
	if ind.State() != Copied {
		t.Fatalf("state = %s before second window elapsed, want copied", ind.State())
	}

	waitForState(t, ind, Idle, 2*time.Second)

	states, times := rec.snapshot()
	if len(states) != 2 || states[0] != Copied || states[1] != Idle {
		t.Fatalf("transitions = %v, want a single copied→idle pair (no flicker)", states)
	}
	if elapsed := times[1].Sub(second); elapsed < window {
		t.Errorf("reset %v after second trigger, want at least %v", elapsed, window)
	}
}

func TestIndicatorClose(t *testing.T) {
	ind := NewIndicator(time.Hour, nil)
	ind.Trigger()
	ind.Close()
	if ind.State() != Idle {
		t.Errorf("state after Close = %s, want idle", ind.State())
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Copied.String() != "copied" || State(9).String() != "unknown" {
		t.Error("unexpected State strings")
	}
}

func TestCopierWritesExactText(t *testing.T) {
	text := "@article{x,\n  title={A \"quoted\" title},\n}\n"
	var got string
	w := WriterFunc(func(_ context.Context, s string) error {
		got = s
		return nil
	})
	ind := NewIndicator(time.Hour, nil)
	defer ind.Close()

	c := NewCopier(w, ind)
	if err := c.Copy(context.Background(), text); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got != text {
		t.Errorf("clipboard = %q, want %q", got, text)
	}
	if c.Indicator().State() != Copied {
		t.Errorf("state = %s, want copied", c.Indicator().State())
	}
}

func TestCopierFailureStaysIdle(t *testing.T) {
	denied := errors.New("permission denied")
	w := WriterFunc(func(context.Context, string) error { return denied })
	ind := NewIndicator(time.Hour, nil)
	defer ind.Close()

	err := NewCopier(w, ind).Copy(context.Background(), "x")
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("error %v does not match ErrWriteFailed", err)
	}
	if !errors.Is(err, denied) {
		t.Errorf("error %v does not wrap the writer error", err)
	}
	if ind.State() != Idle {
		t.Errorf("state = %s after failed write, want idle", ind.State())
	}
}

func TestSystemWriterUnsupported(t *testing.T) {
	s := &SystemWriter{
		lookPath: func(string) (string, error) { return "", exec.ErrNotFound },
		goos:     "linux",
		getenv:   func(string) string { return "" },
	}
	err := s.WriteText(context.Background(), "x")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("error = %v, want ErrUnsupported", err)
	}
}

func TestSystemWriterCandidates(t *testing.T) {
	tests := []struct {
		goos    string
		wayland string
		first   string
	}{
		{"darwin", "", "pbcopy"},
		{"windows", "", "clip"},
		{"linux", "", "xclip"},
		{"linux", "wayland-0", "wl-copy"},
	}
	for _, tt := range tests {
		s := &SystemWriter{goos: tt.goos, getenv: func(string) string { return tt.wayland }}
		if got := s.candidates()[0].name; got != tt.first {
			t.Errorf("%s (wayland=%q): first candidate = %s, want %s", tt.goos, tt.wayland, got, tt.first)
		}
	}
}
