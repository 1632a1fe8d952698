package spread

import "github.com/arl/meetpoint/internal/viscache"

// CacheChecker adapts a viscache.Cache to the VisibilityChecker
// interface. The cache never stores an area paired with itself; such a
// pair is a zero-length sight line and is reported visible. Any other
// missing pair (which should not occur once the cache was built over
// every area in the mesh) is treated as not visible.
type CacheChecker struct {
	Cache *viscache.Cache
}

func (c CacheChecker) Visible(a, b uint32) bool {
	if a == b {
		return true
	}
	v, _ := c.Cache.Get(a, b)
	return v
}
