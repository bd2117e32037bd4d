// Package authstate holds the application-wide authentication state: the
// signed-in username, its role and the logged-in flag. The store is created
// once at start-up and handed to every component that reads or writes it.
package authstate

import "sync"

// State is a point-in-time copy of the store. Empty strings mean "unset".
type State struct {
	Username   string
	Role       string
	IsLoggedIn bool
}

// Listener receives the state after each mutation that changed it.
type Listener func(State)

// Store is the observable auth state. Setters overwrite unconditionally and
// notify listeners synchronously before returning, so a read after a setter
// returns always observes the new value. Listeners must not call setters.
type Store struct {
	// writeMu serialises writers together with their notifications so
	// listeners observe mutations in the order they happened.
	writeMu sync.Mutex

	mu        sync.RWMutex
	state     State
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
}

// New returns a store holding the defaults ("", "", false).
func New() *Store {
	return &Store{listeners: make(map[uint64]Listener)}
}

// Username returns the current username.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Username
}

// Role returns the current role.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Role
}

// IsLoggedIn returns the current logged-in flag.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoggedIn
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetUsername overwrites the username.
func (s *Store) SetUsername(v string) {
	s.update(func(st *State) { st.Username = v })
}

// SetRole overwrites the role.
func (s *Store) SetRole(v string) {
	s.update(func(st *State) { st.Role = v })
}

// SetIsLoggedIn overwrites the logged-in flag.
func (s *Store) SetIsLoggedIn(v bool) {
	s.update(func(st *State) { st.IsLoggedIn = v })
}

// Reset restores the defaults.
func (s *Store) Reset() {
	s.update(func(st *State) { *st = State{} })
}

// Subscribe registers fn and returns a function that removes it. Listeners run
// in registration order.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, candidate := range s.order {
				if candidate == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) update(mutate func(*State)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	before := s.state
	mutate(&s.state)
	after := s.state
	var listeners []Listener
	if after != before {
		listeners = make([]Listener, 0, len(s.order))
		for _, id := range s.order {
			listeners = append(listeners, s.listeners[id])
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(after)
	}
}
