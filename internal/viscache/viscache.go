// Package viscache builds and persists the all-pairs visibility and
// walkability caches: spec's component E. Both caches share the same
// shape (a boolean keyed by a pair of area ids) and the same
// construction strategy (fan out over every unordered pair of distinct
// areas, bounded by GOMAXPROCS), so both are built by the same generic
// machinery parameterized only by the pairwise predicate.
package viscache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arl/meetpoint/internal/atomicfile"
)

// AreaPairKey identifies a pair of area ids. A and B are always
// stored with A <= B: the predicates this cache holds (line-of-sight
// occlusion, double-lift walkability) are evaluated symmetrically, so
// each unordered pair is computed and stored once.
type AreaPairKey struct {
	A, B uint32
}

func newKey(a, b uint32) AreaPairKey {
	if a > b {
		a, b = b, a
	}
	return AreaPairKey{A: a, B: b}
}

// Cache maps area pairs to a boolean verdict (visible / walkable).
type Cache struct {
	entries map[AreaPairKey]bool
}

// Get reports the cached verdict for the pair (a, b), and whether an
// entry exists for it at all. a == b is not a valid pair and always
// misses.
func (c *Cache) Get(a, b uint32) (bool, bool) {
	v, ok := c.entries[newKey(a, b)]
	return v, ok
}

// Len returns the number of pairs held in the cache.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Build computes a Cache over every unordered pair drawn from ids by
// evaluating predicate(a, b) for each, fanned out across
// runtime.GOMAXPROCS(0) workers.
func Build(ids []uint32, predicate func(a, b uint32) bool) (*Cache, error) {
	type pair struct{ a, b uint32 }

	var pairs []pair
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, pair{ids[i], ids[j]})
		}
	}

	results := make([]bool, len(pairs))

	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for idx, p := range pairs {
		idx, p := idx, p
		group.Go(func() error {
			results[idx] = predicate(p.a, p.b)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("viscache: build: %w", err)
	}

	entries := make(map[AreaPairKey]bool, len(pairs))
	for idx, p := range pairs {
		entries[newKey(p.a, p.b)] = results[idx]
	}
	return &Cache{entries: entries}, nil
}

// gobCache is the on-disk gob encoding of a Cache: gob cannot encode
// unexported fields directly, so the map is round-tripped through this
// exported shim.
type gobCache struct {
	Entries map[AreaPairKey]bool
}

// Save persists the cache to path as a gob-encoded map, written
// atomically (a reader never observes a partial file).
func (c *Cache) Save(path string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobCache{Entries: c.entries}); err != nil {
		return fmt.Errorf("viscache: encode: %w", err)
	}
	if err := atomicfile.Write(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("viscache: save %s: %w", path, err)
	}
	return nil
}

// Load reads a Cache previously written by Save.
func Load(path string) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("viscache: load %s: %w", path, err)
	}
	defer f.Close()

	var g gobCache
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf("viscache: decode %s: %w", path, err)
	}
	return &Cache{entries: g.Entries}, nil
}
