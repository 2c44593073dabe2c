package imageview

import "fmt"

// LoadState is the lifecycle of one image request.
type LoadState int

const (
	StateLoading LoadState = iota
	StateLoaded
	StateError
)

// StateNone is reported while no source is tracked; the display shows its
// placeholder and never enters the load lifecycle.
const StateNone LoadState = -1

func (s LoadState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Token identifies one source identity. Every identity change issues a new
// token, and lifecycle signals carrying any other token are stale.
type Token uint64

// Tracker owns the load state of a single display, keyed by token.
//
// The zero Tracker is inactive: no source, no state.
type Tracker struct {
	key    string
	token  Token
	state  LoadState
	err    error
	active bool
}

// Reset points the tracker at src. It returns the token for src and whether
// a new load cycle must start. Re-setting the same source keeps the current
// state; an unresolvable source deactivates the tracker and invalidates any
// pending signals.
func (t *Tracker) Reset(src Source) (Token, bool) {
	key := src.Key()
	if key == "" {
		if t.active {
			t.token++
		}
		t.active = false
		t.key = ""
		t.err = nil
		return t.token, false
	}
	if t.active && key == t.key {
		return t.token, false
	}

	t.token++
	t.key = key
	t.state = StateLoading
	t.err = nil
	t.active = true
	return t.token, true
}

// Start records the start signal. It never moves a finished load back to
// loading.
func (t *Tracker) Start(tok Token) bool {
	return t.current(tok) && t.state == StateLoading
}

// End records a successful load. It reports whether the signal was applied.
func (t *Tracker) End(tok Token) bool {
	if !t.current(tok) || t.state != StateLoading {
		return false
	}
	t.state = StateLoaded
	return true
}

// Fail records a failed load. It reports whether the signal was applied.
func (t *Tracker) Fail(tok Token, err error) bool {
	if !t.current(tok) || t.state != StateLoading {
		return false
	}
	t.state = StateError
	t.err = err
	return true
}

func (t *Tracker) current(tok Token) bool {
	return t.active && tok == t.token
}

// Active reports whether a resolvable source is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// Token returns the current token.
func (t *Tracker) Token() Token {
	return t.token
}

// State returns the current state, or StateNone while inactive.
func (t *Tracker) State() LoadState {
	if !t.active {
		return StateNone
	}
	return t.state
}

// Err returns the failure recorded by Fail.
func (t *Tracker) Err() error {
	return t.err
}
