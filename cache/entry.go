package cache

import "time"
import "sync/atomic"

// Entry instants are relative to the package load time. The absolute
// values are meaningless, only distances between them matter for the
// eviction heuristic.
var epoch = time.Now()

// A time instant with some arbitrary downscaling applied (close to
// converting nanoseconds to hundredths of a second).
func cacheEntryInstant() uint32 {
	return uint32((time.Since(epoch).Nanoseconds() + testInstantNanosHack) >> 27)
}

// Lets tests age entries without time.Sleep() calls.
var testInstantNanosHack int64

// Fixed per-entry overhead estimation for map and struct bookkeeping.
const entryOverheadBytes = 56

// A cached glyph coverage slice with additional information to
// estimate how much the entry is being used.
type cachedEntry struct {
	Coverage []byte // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // Read-only. See cacheEntryInstant().
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries (smallest
// values) are the candidates for eviction. Concurrent-safe.
func (self *cachedEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Creates a new cached entry for the given coverage slice.
func newCachedEntry(coverage []byte) (*cachedEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedEntry {
		Coverage: coverage,
		ByteSize: uint32(len(coverage)) + entryOverheadBytes,
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
