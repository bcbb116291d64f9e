// Package input holds the set of currently pressed control codes.
//
// Press and release events arrive from transport goroutines; the simulation
// loop reads the set once per tick. An event delivered mid-tick is visible on
// the next one.
package input

import "sync"

type State struct {
	lock    *sync.RWMutex
	pressed map[string]bool
}

func NewState() *State {
	return &State{
		lock:    &sync.RWMutex{},
		pressed: make(map[string]bool),
	}
}

func (s *State) Press(code string) {
	s.lock.Lock()
	s.pressed[code] = true
	s.lock.Unlock()
}

func (s *State) Release(code string) {
	s.lock.Lock()
	delete(s.pressed, code)
	s.lock.Unlock()
}

func (s *State) IsDown(code string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.pressed[code]
}

// Snapshot returns a copy of the pressed set, safe to read without locking.
func (s *State) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()

	snap := make(Snapshot, len(s.pressed))
	for code := range s.pressed {
		snap[code] = true
	}

	return snap
}

func (s *State) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.pressed)
}

// Snapshot is a read-only view of the pressed set at one tick.
type Snapshot map[string]bool

func (snap Snapshot) IsDown(code string) bool {
	return snap[code]
}
