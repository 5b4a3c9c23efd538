// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Cache memoizes realized values of distributions within a single
// evaluation call tree. It is keyed by distribution identity, so two
// independently constructed but otherwise identical distributions do
// not share entries.
//
// A Cache is scoped to one logical evaluation (one sample draw, one
// density query of a composite distribution) and is discarded
// afterwards. It is not safe for concurrent use; callers that
// parallelize over independent batches must give each batch its own
// Cache.
type Cache struct {
	vals map[*Dist]float64
}

// NewCache returns an empty evaluation cache.
func NewCache() *Cache {
	return &Cache{vals: make(map[*Dist]float64)}
}

// Value returns the realized value cached for d, if any.
func (c *Cache) Value(d *Dist) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.vals[d]
	return v, ok
}

func (c *Cache) put(d *Dist, v float64) {
	if c != nil {
		c.vals[d] = v
	}
}
