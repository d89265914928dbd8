// Package logostore keeps uploaded logos in memory for a limited time so the
// preview and download requests can refer to them by id.
package logostore

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired ids.
var ErrNotFound = errors.New("logo not found")

type entry struct {
	img     image.Image
	expires time.Time
}

// Store is a bounded map of decoded logos. The zero value is not usable;
// call New.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// New returns a Store keeping at most max logos for ttl each.
func New(ttl time.Duration, max int) *Store {
	if max <= 0 {
		max = 1
	}
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		max:     max,
		now:     time.Now,
	}
}

// Put stores img and returns its id. The oldest logo is evicted when the
// store is full.
func (s *Store) Put(img image.Image) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	for len(s.order) >= s.max {
		delete(s.entries, s.order[0])
		s.order = s.order[1:]
	}
	s.entries[id] = &entry{img: img, expires: s.now().Add(s.ttl)}
	s.order = append(s.order, id)
	return id
}

// Get returns the logo stored under id and refreshes its expiry.
func (s *Store) Get(id string) (image.Image, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return nil, ErrNotFound
	}
	e.expires = s.now().Add(s.ttl)
	return e.img, nil
}

// Delete drops a logo. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

// Len is the number of live logos.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	return len(s.order)
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && !s.now().Before(e.expires)
}

// sweep drops expired entries. Callers hold mu.
func (s *Store) sweep() {
	kept := s.order[:0]
	for _, id := range s.order {
		if e := s.entries[id]; e != nil && !s.expired(e) {
			kept = append(kept, id)
			continue
		}
		delete(s.entries, id)
	}
	s.order = kept
}

func (s *Store) remove(id string) {
	if _, ok := s.entries[id]; !ok {
		return
	}
	delete(s.entries, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
