package toast

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// maxIDAttempts bounds retries when a generator returns an id that is
// already active.
const maxIDAttempts = 8

// Store is the ordered collection of active toasts.
//
// Writes are serialized by a mutex and replace the whole slice; reads load
// the current slice through an atomic pointer and never block.
type Store struct {
	mu       sync.Mutex
	messages atomic.Pointer[[]Message]

	ids IDGenerator
	now func() time.Time

	subMu  sync.RWMutex
	subs   map[uint64]func([]Message)
	nextID uint64
}

// NewStore creates an empty store. A nil generator defaults to UUIDs and a
// nil now defaults to time.Now.
func NewStore(ids IDGenerator, now func() time.Time) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if now == nil {
		now = time.Now
	}
	s := &Store{
		ids:  ids,
		now:  now,
		subs: make(map[uint64]func([]Message)),
	}
	empty := []Message{}
	s.messages.Store(&empty)
	return s
}

// Add appends a new message built from in and returns its id.
// The severity is normalized; no other field is checked.
func (s *Store) Add(in Input) string {
	s.mu.Lock()
	current := *s.messages.Load()

	msg := Message{
		ID:          s.uniqueID(current),
		Title:       in.Title,
		Description: in.Description,
		Severity:    in.Severity.Normalize(),
		CreatedAt:   s.now(),
	}

	next := make([]Message, len(current), len(current)+1)
	copy(next, current)
	next = append(next, msg)
	s.messages.Store(&next)
	s.mu.Unlock()

	s.notify(next)
	return msg.ID
}

// uniqueID draws ids until one is not active. Must be called with mu held.
func (s *Store) uniqueID(current []Message) string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if id != "" && indexOf(current, id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}

// Remove drops the message with the given id and returns it.
// Removing an absent id changes nothing and notifies no one.
func (s *Store) Remove(id string) (Message, bool) {
	s.mu.Lock()
	current := *s.messages.Load()

	idx := indexOf(current, id)
	if idx < 0 {
		s.mu.Unlock()
		return Message{}, false
	}
	removed := current[idx]

	next := make([]Message, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	s.messages.Store(&next)
	s.mu.Unlock()

	s.notify(next)
	return removed, true
}

// Messages returns the current snapshot in insertion order.
// The slice is shared; callers must not modify it.
func (s *Store) Messages() []Message {
	return *s.messages.Load()
}

// Get returns the active message with the given id.
func (s *Store) Get(id string) (Message, bool) {
	current := s.Messages()
	if idx := indexOf(current, id); idx >= 0 {
		return current[idx], true
	}
	return Message{}, false
}

// Len returns the number of active messages.
func (s *Store) Len() int {
	return len(s.Messages())
}

// Subscribe registers fn to be called after every change with the new
// snapshot. Calls happen synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func([]Message)) (unsubscribe func()) {
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify calls subscribers without holding any store lock, so a subscriber
// may call back into the store.
func (s *Store) notify(snapshot []Message) {
	s.subMu.RLock()
	subs := make([]func([]Message), 0, len(s.subs))
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func indexOf(messages []Message, id string) int {
	for i := range messages {
		if messages[i].ID == id {
			return i
		}
	}
	return -1
}
