package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

// DefaultMemoryEntries bounds a Memory store created with NewMemory(0).
const DefaultMemoryEntries = 64

// Memory is an in-process Store with per-entry expiry and a bounded
// entry count. Inserting into a full store evicts the entry that was
// written longest ago. Expired entries are collected lazily on Get.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	seq     uint64
	max     int
}

type memoryEntry struct {
	signal  simulate.Signal
	expires time.Time // zero = no ttl
	seq     uint64
}

// NewMemory returns an empty store holding at most maxEntries signals.
// maxEntries <= 0 selects DefaultMemoryEntries.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		max:     maxEntries,
	}
}

func (m *Memory) Get(ctx context.Context, key string) (simulate.Signal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return simulate.Signal{}, ErrMiss
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(m.entries, key)
		return simulate.Signal{}, ErrMiss
	}
	return cloneSignal(e.signal), nil
}

func (m *Memory) Set(ctx context.Context, key string, sig simulate.Signal, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; !ok && len(m.entries) >= m.max {
		m.evictOldestLocked()
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	m.seq++
	m.entries[key] = memoryEntry{signal: cloneSignal(sig), expires: exp, seq: m.seq}
	return nil
}

// Len reports the number of entries currently held, counting expired
// entries that have not been collected yet.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) evictOldestLocked() {
	var oldest string
	var oldestSeq uint64
	for k, e := range m.entries {
		if oldest == "" || e.seq < oldestSeq {
			oldest = k
			oldestSeq = e.seq
		}
	}
	if oldest != "" {
		delete(m.entries, oldest)
	}
}

// cloneSignal copies the sample slice so cached data and caller data
// cannot alias each other.
func cloneSignal(sig simulate.Signal) simulate.Signal {
	out := sig
	out.Samples = make([]float64, len(sig.Samples))
	copy(out.Samples, sig.Samples)
	return out
}
