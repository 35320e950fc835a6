package searcher

import (
	"sync"

	"quorum/game"
)

// TableBuckets is the fixed bucket count of the transposition table.
const TableBuckets = 1 << 20

type tableEntry struct {
	hash  uint64
	value game.Valuation
}

// TranspositionTable caches position valuations by their 64-bit hash.
// Buckets are append-only: entries are never replaced or evicted
// within a session, and a lookup trusts the full hash alone, so two
// positions colliding on 64 bits share a value. That trade-off is part
// of the table's contract, as is serving concurrent searches under a
// shared-read/exclusive-write discipline.
type TranspositionTable struct {
	mu      sync.RWMutex
	buckets [][]tableEntry
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{buckets: make([][]tableEntry, TableBuckets)}
}

// Lookup returns the cached valuation for hash, if any.
func (t *TranspositionTable) Lookup(hash uint64) (game.Valuation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, entry := range t.buckets[hash%TableBuckets] {
		if entry.hash == hash {
			return entry.value, true
		}
	}
	return 0, false
}

// Insert appends unconditionally, without deduplicating.
func (t *TranspositionTable) Insert(hash uint64, value game.Valuation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	bucket := hash % TableBuckets
	t.buckets[bucket] = append(t.buckets[bucket], tableEntry{hash: hash, value: value})
}

// Reset discards every entry, for reuse between independent search
// sessions.
func (t *TranspositionTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buckets = make([][]tableEntry, TableBuckets)
}

// Len reports the number of cached entries.
func (t *TranspositionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}
