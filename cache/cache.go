package cache

import "math"
import "sync"
import "sync/atomic"

// Cache keys identify a rasterized glyph: the codepoint (a single
// byte, as the rendering pipeline performs no multi-byte decoding)
// plus the exact horizontal and vertical scale factors it was
// rasterized at, as IEEE 754 bit patterns.
type Key struct {
	Codepoint byte
	ScaleXBits uint64
	ScaleYBits uint64
}

// Builds the cache key for a codepoint at the given scale factors.
func NewKey(codepoint byte, scaleX, scaleY float64) Key {
	return Key {
		Codepoint: codepoint,
		ScaleXBits: math.Float64bits(scaleX),
		ScaleYBits: math.Float64bits(scaleY),
	}
}

// A glyph coverage cache. It is concurrent-safe (though not optimized
// or expected to be used under heavily concurrent scenarios), it has
// memory bounds and uses random sampling for evicting entries.
type GlyphCache struct {
	entries map[Key]*cachedEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size, in bytes.
// Negative values will panic.
func New(maxByteSize int) *GlyphCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &GlyphCache {
		entries: make(map[Key]*cachedEntry, 64),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Gets the coverage slice associated to the given key. The slice is
// shared and must not be modified by the caller.
func (self *GlyphCache) Coverage(key Key) ([]byte, bool) {
	self.mutex.RLock()
	entry, found := self.entries[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Coverage, true
}

// Stores the given coverage slice with the given key. The cache takes
// ownership of the slice. If there's not enough space and no entry
// cold enough to evict, the pass is silently dropped.
func (self *GlyphCache) Pass(key Key, coverage []byte) {
	const MaxMakeRoomAttempts = 2

	// see if we have enough space to add the entry, or try
	// to make some room otherwise
	entry, instant := newCachedEntry(coverage)
	if entry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if entry.ByteSize > spaceBytesLeft {
		hotness := entry.Hotness(instant)
		missingSpace := entry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeColdEntry(hotness, instant)
			if freedSpace >= missingSpace { goto roomMade }
		}

		// we didn't make enough room for the new entry. desist.
		if freedSpace != 0 {
			atomic.AddUint32(&self.spaceBytesLeft, freedSpace)
		}
		return
	}

roomMade:
	// add the entry to the cache
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
	_, alreadyExists := self.entries[key]
	if alreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < entry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(entry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.entries[key] = entry
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples (map iteration order provides the sampling).
// May not remove anything in some cases.
//
// The returned value is the freed space, which must be manually
// added back to spaceBytesLeft by the caller.
func (self *GlyphCache) removeColdEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.entries {
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	// delete selected entry, if any
	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.entries[selectedKey]
		if stillExists {
			delete(self.entries, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Returns an approximation of the number of bytes taken by the
// coverage slices currently stored in the cache.
func (self *GlyphCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *GlyphCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}
