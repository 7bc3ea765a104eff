package sim

import (
	"math/rand"
	"time"
)

type ManagerOpt func(*Manager)

// WithPublisher routes simulation events to the given publisher.
func WithPublisher(pub Publisher) ManagerOpt {
	return func(m *Manager) {
		m.pub = pub
	}
}

// WithRand fixes the random source, for deterministic tests.
func WithRand(rng *rand.Rand) ManagerOpt {
	return func(m *Manager) {
		m.rng = rng
	}
}

// WithClock fixes the wall clock used for spawn-point expiry.
func WithClock(now func() time.Time) ManagerOpt {
	return func(m *Manager) {
		m.now = now
	}
}
