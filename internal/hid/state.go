package hid

import (
	"sync"

	"github.com/qmuntal/stateless"
)

// lifecycle wraps the qmuntal/stateless machine with the mutex its
// single-core usage needs — stateless.StateMachine itself is not
// required to be goroutine-safe, and the ticker reads the current
// state while the constructing or closing caller fires triggers.
type lifecycle struct {
	mu sync.Mutex
	sm *stateless.StateMachine
}

// The six named lifecycle states spec.md §4.6 assigns to a Device
// Core, implemented as an explicit FSM rather than ad hoc booleans.
const (
	stateOpened     = "opened"
	stateConfigured = "configured"
	stateIdentified = "identified"
	stateCreated    = "created"
	stateRunning    = "running"
	stateDestroyed  = "destroyed"
)

const (
	triggerConfigure    = "configure"
	triggerIdentify     = "identify"
	triggerCreate       = "create"
	triggerStartPolling = "startPolling"
	triggerDestroy      = "destroy"
)

// newLifecycle builds the FSM for one Device Core. Every state before
// destroyed permits destroy, matching spec.md's "close() must be idempotent and safe to
// call on partially-initialized cores."
func newLifecycle() *stateless.StateMachine {
	sm := stateless.NewStateMachine(stateOpened)

	sm.Configure(stateOpened).
		Permit(triggerConfigure, stateConfigured).
		Permit(triggerDestroy, stateDestroyed)

	sm.Configure(stateConfigured).
		Permit(triggerIdentify, stateIdentified).
		Permit(triggerDestroy, stateDestroyed)

	sm.Configure(stateIdentified).
		Permit(triggerCreate, stateCreated).
		Permit(triggerDestroy, stateDestroyed)

	sm.Configure(stateCreated).
		Permit(triggerStartPolling, stateRunning).
		Permit(triggerDestroy, stateDestroyed)

	sm.Configure(stateRunning).
		Permit(triggerDestroy, stateDestroyed)

	sm.Configure(stateDestroyed)

	return sm
}

// fire advances the FSM, silently ignoring (never panicking on) a
// trigger that isn't permitted from the current state — that would indicate a Core-
// internal sequencing bug, not a caller error, since every trigger
// here is fired by Core's own construction/destruction sequence.
func (l *lifecycle) fire(trigger string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.sm.Fire(trigger)
}

// current returns the FSM's present state.
func (l *lifecycle) current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sm.MustState().(string)
}
