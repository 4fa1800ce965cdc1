package solver

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// Estimated bytes per stored fingerprint, including map bucket overhead.
const entrySize = 64

const numShards = 256

// A DeadSet is the memoization table for the search: the set of board
// fingerprints proven to have no solution anywhere beneath them. Entries
// are only added after a position's entire subtree has been exhausted,
// so a hit is always a finalized verdict, never a mid-computation state.
// Entries are never removed.
//
// The set is sharded so that parallel workers can share it without a
// global lock; the shard for a fingerprint is picked by hashing it.
type DeadSet struct {
	shards [numShards]deadShard

	maxEntries uint64
	entries    atomic.Uint64
	lookups    atomic.Uint64
	hits       atomic.Uint64
	capped     atomic.Bool
}

type deadShard struct {
	sync.RWMutex
	set map[uint64]struct{}
}

// NewDeadSet sizes the set against a fraction of total system memory.
// The budget is a safety valve, not a correctness requirement: once it
// is reached the set stops growing and the search merely re-explores
// some hopeless positions instead of crashing the process.
func NewDeadSet(fractionOfMemory float64) *DeadSet {
	d := &DeadSet{}
	totalMem := memory.TotalMemory()
	d.maxEntries = uint64(fractionOfMemory * (float64(totalMem) / float64(entrySize)))
	for i := range d.shards {
		d.shards[i].set = make(map[uint64]struct{})
	}
	log.Debug().Uint64("max-entries", d.maxEntries).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("deadset-size")
	return d
}

func (d *DeadSet) shard(fp uint64) *deadShard {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], fp)
	return &d.shards[xxhash.Sum64(buf[:])&(numShards-1)]
}

// Contains reports whether fp has been proven dead.
func (d *DeadSet) Contains(fp uint64) bool {
	d.lookups.Add(1)
	sh := d.shard(fp)
	sh.RLock()
	_, ok := sh.set[fp]
	sh.RUnlock()
	if ok {
		d.hits.Add(1)
	}
	return ok
}

// Add records fp as dead. Adding the same fingerprint twice is a no-op;
// adding past the memory budget is dropped.
func (d *DeadSet) Add(fp uint64) {
	if d.entries.Load() >= d.maxEntries {
		if d.capped.CompareAndSwap(false, true) {
			log.Warn().Uint64("max-entries", d.maxEntries).
				Msg("deadset-budget-reached; search continues without new entries")
		}
		return
	}
	sh := d.shard(fp)
	sh.Lock()
	_, exists := sh.set[fp]
	if !exists {
		sh.set[fp] = struct{}{}
	}
	sh.Unlock()
	if !exists {
		d.entries.Add(1)
	}
}

// Len returns the number of stored fingerprints.
func (d *DeadSet) Len() uint64 {
	return d.entries.Load()
}

// Lookups and Hits expose counters for end-of-search logging.
func (d *DeadSet) Lookups() uint64 { return d.lookups.Load() }
func (d *DeadSet) Hits() uint64    { return d.hits.Load() }
