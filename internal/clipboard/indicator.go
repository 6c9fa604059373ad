package clipboard

import (
	"sync"
	"time"
)

// DefaultWindow is how long the copied indicator stays on after a copy.
const DefaultWindow = 2000 * time.Millisecond

// State is the two-state copied indicator.
type State int

const (
	Idle State = iota
	Copied
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Copied:
		return "copied"
	default:
		return "unknown"
	}
}

// Indicator owns the copied flag. Trigger turns it on and arms a reset for
// one window later; a later Trigger replaces the pending reset, so the flag
// stays on for a full window measured from the most recent Trigger.
type Indicator struct {
	window   time.Duration
	onChange func(State)

	mu    sync.Mutex
	state State
	gen   uint64
	timer *time.Timer
}

// NewIndicator returns an idle indicator. A non-positive window selects
// DefaultWindow. onChange, if non-nil, is called after every transition,
// outside the lock.
func NewIndicator(window time.Duration, onChange func(State)) *Indicator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Indicator{window: window, onChange: onChange}
}

// Window returns the reset delay.
func (i *Indicator) Window() time.Duration { return i.window }

// State returns the current state.
func (i *Indicator) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Trigger sets the indicator to Copied and re-arms the reset timer.
func (i *Indicator) Trigger() {
	i.mu.Lock()
	i.gen++
	gen := i.gen
	if i.timer != nil {
		i.timer.Stop()
	}
	changed := i.state != Copied
	i.state = Copied
	i.timer = time.AfterFunc(i.window, func() { i.reset(gen) })
	i.mu.Unlock()

	if changed {
		i.notify(Copied)
	}
}

// reset returns to Idle unless a newer Trigger has superseded gen. Stop
// cannot recall a timer whose callback is already running, hence the check.
func (i *Indicator) reset(gen uint64) {
	i.mu.Lock()
	if gen != i.gen || i.state != Copied {
		i.mu.Unlock()
		return
	}
	i.state = Idle
	i.timer = nil
	i.mu.Unlock()

	i.notify(Idle)
}

// Close stops any pending reset and leaves the indicator Idle.
func (i *Indicator) Close() {
	i.mu.Lock()
	i.gen++
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	changed := i.state != Idle
	i.state = Idle
	i.mu.Unlock()

	if changed {
		i.notify(Idle)
	}
}

func (i *Indicator) notify(s State) {
	if i.onChange != nil {
		i.onChange(s)
	}
}
