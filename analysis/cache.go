package analysis

import "sync"

// Fingerprint identifies one analysis up to bit-identical output: the
// solver is deterministic, so equal fingerprints imply equal results.
// Curve angles and solver thresholds are deliberately excluded — callers
// that vary those should not memoize.
type Fingerprint struct {
	Code     string
	Chord    float64
	NPoints  int
	Panels   int
	AlphaDeg float64
	VInf     float64
}

// Fingerprint derives the cache key for the request, after default
// resolution so that explicit and implied defaults collide.
func (r Request) Fingerprint() Fingerprint {
	r = r.withDefaults()

	return Fingerprint{
		Code:     r.Code,
		Chord:    r.Chord,
		NPoints:  r.NPoints,
		Panels:   r.Panels,
		AlphaDeg: r.AlphaDeg,
		VInf:     r.VInf,
	}
}

// Cache is an explicit fingerprint→Result memo for callers that want to
// reuse identical analyses. The engine itself never consults one: a Cache
// is always owned, sized and invalidated by the layer that created it.
type Cache struct {
	mu      sync.RWMutex
	entries map[Fingerprint]*Result
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Fingerprint]*Result)}
}

// Get returns the memoized result for fp, if any.
func (c *Cache) Get(fp Fingerprint) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[fp]

	return res, ok
}

// Put memoizes res under fp, overwriting any previous entry.
func (c *Cache) Put(fp Fingerprint, res *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fp] = res
}

// Len reports the number of memoized results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
