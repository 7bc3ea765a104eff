package game

import "sync"

// Stockpile is the single source of truth for the player's resource
// counts. All access must go through its methods to ensure thread-safety;
// the simulation writes to it, console sessions read from it.
type Stockpile struct {
	mu        sync.RWMutex
	amounts   map[ResourceKind]int
	observers map[int]func(map[ResourceKind]int)
	nextObs   int
}

// NewStockpile creates a stockpile seeded with the given amounts.
// Every known kind is tracked even when it starts at zero.
func NewStockpile(initial map[ResourceKind]int) *Stockpile {
	s := &Stockpile{
		amounts:   make(map[ResourceKind]int, len(ResourceKinds)),
		observers: make(map[int]func(map[ResourceKind]int)),
	}
	for _, kind := range ResourceKinds {
		s.amounts[kind] = initial[kind]
	}
	return s
}

// Add increases the count of one kind and notifies observers.
// Negative amounts are ignored; callers deduct through Remove.
func (s *Stockpile) Add(kind ResourceKind, amount int) {
	if amount <= 0 {
		return
	}

	s.mu.Lock()
	s.amounts[kind] += amount
	s.mu.Unlock()

	s.notify()
}

// Remove subtracts amount from one kind. It returns false and leaves
// the stockpile unchanged if the current count is insufficient.
// Observers are notified on success only.
func (s *Stockpile) Remove(kind ResourceKind, amount int) bool {
	if amount < 0 {
		return false
	}

	s.mu.Lock()
	if s.amounts[kind] < amount {
		s.mu.Unlock()
		return false
	}
	s.amounts[kind] -= amount
	s.mu.Unlock()

	s.notify()
	return true
}

// HasEnough reports whether every kind named in cost is available in
// the required amount. Kinds not named are ignored.
func (s *Stockpile) HasEnough(cost Cost) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasEnoughLocked(cost)
}

func (s *Stockpile) hasEnoughLocked(cost Cost) bool {
	for kind, amt := range cost {
		if s.amounts[kind] < amt {
			return false
		}
	}
	return true
}

// DeductCost subtracts a multi-kind cost atomically: either every kind
// is deducted or nothing changes. Observers are notified once on success.
func (s *Stockpile) DeductCost(cost Cost) bool {
	s.mu.Lock()
	if !s.hasEnoughLocked(cost) {
		s.mu.Unlock()
		return false
	}
	for kind, amt := range cost {
		s.amounts[kind] -= amt
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// Amount returns the current count of one kind.
func (s *Stockpile) Amount(kind ResourceKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.amounts[kind]
}

// Snapshot returns a copy of all current counts. The copy does not
// observe later mutation.
func (s *Stockpile) Snapshot() map[ResourceKind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[ResourceKind]int, len(s.amounts))
	for kind, amt := range s.amounts {
		out[kind] = amt
	}
	return out
}

// OnChange registers an observer called with a snapshot after every
// successful mutation. It returns an unsubscribe function; calling it
// more than once is a no-op.
func (s *Stockpile) OnChange(fn func(map[ResourceKind]int)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// notify fans out to observers outside the lock so callbacks may read
// the stockpile.
func (s *Stockpile) notify() {
	s.mu.RLock()
	fns := make([]func(map[ResourceKind]int), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	snap := s.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}
