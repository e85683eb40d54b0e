package cache

import (
	"net/http"
	"sync"
	"time"
)

// Entry is one cached response: status, headers and body bytes.
type Entry struct {
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

func (e *Entry) clone() *Entry {
	body := make([]byte, len(e.Body))
	copy(body, e.Body)
	return &Entry{
		Status:   e.Status,
		Header:   e.Header.Clone(),
		Body:     body,
		StoredAt: e.StoredAt,
	}
}

// Partition is a named, independently bounded slice of the store. Entries
// keep explicit insertion order so eviction is true FIFO rather than the
// enumeration-order approximation a browser cache store offers.
type Partition struct {
	name string

	mu      sync.Mutex
	entries map[string]*Entry
	order   []string
}

func newPartition(name string) *Partition {
	return &Partition{
		name:    name,
		entries: make(map[string]*Entry),
	}
}

// Name returns the partition's cache name, including the version suffix.
func (p *Partition) Name() string {
	return p.name
}

// Get returns a copy of the entry for key, if present.
func (p *Partition) Get(key string) (*Entry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[key]
	if !ok {
		return nil, false
	}
	return e.clone(), true
}

// Put stores a copy of the entry. Overwriting an existing key keeps its
// original position, so a refreshed entry is still the same age for eviction.
func (p *Partition) Put(key string, e *Entry) {
	stored := e.clone()
	if stored.StoredAt.IsZero() {
		stored.StoredAt = time.Now()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.entries[key]; !exists {
		p.order = append(p.order, key)
	}
	p.entries[key] = stored
}

// Delete removes a single entry.
func (p *Partition) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.entries[key]; !exists {
		return
	}
	delete(p.entries, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Keys returns the stored keys in insertion order.
func (p *Partition) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, len(p.order))
	copy(keys, p.order)
	return keys
}

// Len returns the number of stored entries.
func (p *Partition) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Trim evicts the oldest entries until at most limit remain, returning how
// many were removed. A limit <= 0 means unbounded.
func (p *Partition) Trim(limit int) int {
	if limit <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	excess := len(p.order) - limit
	if excess <= 0 {
		return 0
	}
	for _, key := range p.order[:excess] {
		delete(p.entries, key)
	}
	p.order = append([]string(nil), p.order[excess:]...)
	return excess
}

// Store holds all named partitions.
type Store struct {
	mu         sync.Mutex
	partitions map[string]*Partition
}

func NewStore() *Store {
	return &Store{partitions: make(map[string]*Partition)}
}

// Open returns the named partition, creating it if needed.
func (s *Store) Open(name string) *Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.partitions[name]
	if !ok {
		p = newPartition(name)
		s.partitions[name] = p
	}
	return p
}

// Names lists all existing partition names.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	return names
}

// Delete drops a whole partition and everything in it.
func (s *Store) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partitions, name)
}
