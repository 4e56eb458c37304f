package wa

import (
	"sync"
	"time"
)

// State is the connection lifecycle state of the single bridge session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateQRPending     State = "qr_pending"
	StateAuthenticated State = "authenticated"
	StateReady         State = "ready"
	StateDisconnected  State = "disconnected"
	StateAuthFailed    State = "auth_failed"
)

// Ordinal returns a stable numeric value for the state gauge.
func (s State) Ordinal() int {
	switch s {
	case StateUninitialized:
		return 0
	case StateQRPending:
		return 1
	case StateAuthenticated:
		return 2
	case StateReady:
		return 3
	case StateDisconnected:
		return 4
	case StateAuthFailed:
		return 5
	}
	return -1
}

type EventKind int

const (
	EventQR EventKind = iota
	EventAuthenticated
	EventReady
	EventAuthFailure
	EventDisconnected
)

// Event is one lifecycle signal from the provider client.
type Event struct {
	Kind    EventKind
	Payload string // pairing payload, EventQR only
	Reason  string // EventAuthFailure / EventDisconnected
}

// Snapshot is the externally visible session state. ReadySince is zero
// unless the state is ready; PairingPayload is non-empty exactly while
// the state is qr_pending.
type Snapshot struct {
	State                State
	PairingPayload       string
	ReadySince           time.Time
	LastDisconnectReason string
}

// Machine applies lifecycle events to a snapshot. Events that are not
// valid for the current state are ignored, so no sequence of provider
// events can reach an undefined state.
type Machine struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

func NewMachine() *Machine {
	return &Machine{
		snap: Snapshot{State: StateUninitialized},
		now:  time.Now,
	}
}

// Snapshot returns the current state without blocking on provider calls.
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Apply advances the machine by one event and reports whether the
// snapshot changed.
func (m *Machine) Apply(e Event) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.snap
	switch e.Kind {
	case EventQR:
		// A fresh code can arrive repeatedly while the user has not
		// scanned; every code replaces the previous one.
		switch prev.State {
		case StateUninitialized, StateQRPending, StateDisconnected, StateAuthFailed:
			if e.Payload != "" {
				m.snap = Snapshot{State: StateQRPending, PairingPayload: e.Payload}
			}
		}

	case EventAuthenticated:
		if prev.State == StateQRPending {
			m.snap = Snapshot{State: StateAuthenticated}
		}

	case EventReady:
		// The provider may skip the authenticated step (restored
		// credentials, or ready fired straight after the scan).
		if prev.State != StateReady {
			m.snap = Snapshot{State: StateReady, ReadySince: m.now()}
		}

	case EventAuthFailure:
		if prev.State != StateReady {
			m.snap = Snapshot{State: StateAuthFailed, LastDisconnectReason: e.Reason}
		}

	case EventDisconnected:
		if prev.State == StateReady {
			m.snap = Snapshot{State: StateDisconnected, LastDisconnectReason: e.Reason}
		}
	}

	return m.snap, m.snap != prev
}

// Reset forces the machine back to a state, used by logout and restart
// where the trigger is a local operation rather than a provider event.
func (m *Machine) Reset(s State, reason string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = Snapshot{State: s, LastDisconnectReason: reason}
	return m.snap
}
