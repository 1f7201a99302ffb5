// Package fingerprint provides the content-addressed cache the C5 nested-root
// table/struct primitives consult when Options.CacheNestedRoots is set: a
// root embedded inside another buffer (a FlatBuffers "nested_flatbuffer" or
// "nested_struct" field) is hashed and, on a repeat hash, its previously
// rendered JSON bytes are replayed instead of being walked and printed a
// second time.
//
// Algorithm selection follows internal/hash's Algorithm enum in the
// TFMV-flashfs codebase this package is adapted from, trimmed to the three
// hashers actually used across that codebase (cespare/xxhash/v2,
// spaolacci/murmur3, zeebo/blake3) rather than the general-purpose file
// hashing menu it offered.
package fingerprint

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/blake3"
)

// Algorithm selects the hash function a Cache fingerprints nested roots
// with.
type Algorithm int

const (
	// BLAKE3 is the default: fast, wide (256-bit), and already a direct
	// dependency for this reason elsewhere in the corpus.
	BLAKE3 Algorithm = iota
	// XXHash64 is the cheapest option, suitable when nested roots are
	// small and collisions are an acceptable risk for the speedup.
	XXHash64
	// Murmur3Combined pairs xxhash64 and murmur3's 64-bit sum the way
	// storage.go's BloomFilter does, to cut accidental-collision risk
	// without paying BLAKE3's cost.
	Murmur3Combined
)

func (a Algorithm) String() string {
	switch a {
	case BLAKE3:
		return "BLAKE3"
	case XXHash64:
		return "XXHash64"
	case Murmur3Combined:
		return "Murmur3Combined"
	default:
		return "Undefined"
	}
}

// Sum128 is a 128-bit content fingerprint, wide enough that
// Murmur3Combined's two independent 64-bit hashes and BLAKE3's truncated
// digest can share one comparable, map-keyable representation.
type Sum128 struct {
	Lo uint64
	Hi uint64
}

func sum(algo Algorithm, data []byte) Sum128 {
	switch algo {
	case XXHash64:
		return Sum128{Lo: xxhash.Sum64(data)}
	case Murmur3Combined:
		return Sum128{Lo: xxhash.Sum64(data), Hi: murmur3.Sum64(data)}
	default:
		digest := blake3.Sum256(data)
		return Sum128{
			Lo: uint64(digest[0]) | uint64(digest[1])<<8 | uint64(digest[2])<<16 | uint64(digest[3])<<24 |
				uint64(digest[4])<<32 | uint64(digest[5])<<40 | uint64(digest[6])<<48 | uint64(digest[7])<<56,
			Hi: uint64(digest[8]) | uint64(digest[9])<<8 | uint64(digest[10])<<16 | uint64(digest[11])<<24 |
				uint64(digest[12])<<32 | uint64(digest[13])<<40 | uint64(digest[14])<<48 | uint64(digest[15])<<56,
		}
	}
}

// Cache maps a nested root's content fingerprint to the JSON bytes already
// rendered for it. A jsonprinter Context creates its own Cache when
// Options.CacheNestedRoots is set; there is no way to hand an existing
// Cache to a Context, so entries are not shared between Contexts.
type Cache struct {
	algo Algorithm
	mu   sync.Mutex
	hits map[Sum128][]byte

	Hits   uint64
	Misses uint64
}

// NewCache returns an empty Cache keyed by algo.
func NewCache(algo Algorithm) *Cache {
	return &Cache{algo: algo, hits: make(map[Sum128][]byte)}
}

// Lookup fingerprints data and returns the previously stored rendering for
// it, if any.
func (c *Cache) Lookup(data []byte) (Sum128, []byte, bool) {
	key := sum(c.algo, data)
	c.mu.Lock()
	defer c.mu.Unlock()
	rendered, ok := c.hits[key]
	if ok {
		c.Hits++
	} else {
		c.Misses++
	}
	return key, rendered, ok
}

// Store records rendered as the output for the nested root whose fingerprint
// is key (as returned by a prior Lookup miss).
func (c *Cache) Store(key Sum128, rendered []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Copy: rendered typically aliases a Context's internal buffer, which
	// is reused and overwritten on the next flush.
	c.hits[key] = append([]byte(nil), rendered...)
}

// Reset discards all cached entries but keeps the configured Algorithm,
// so a Cache can be reused across a fresh emission sequence.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits = make(map[Sum128][]byte)
	c.Hits = 0
	c.Misses = 0
}
