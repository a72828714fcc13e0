// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import "sync"

// pathCache is a write-once-read-many memoization of a loaded table,
// keyed by absolute file path, safe for concurrent readers. This is the
// "one-time-initialization primitive" required by §5: concurrent
// readers never observe partial state because the whole load happens
// under the write lock before the entry becomes visible.
type pathCache[T any] struct {
	mu   sync.RWMutex
	data map[string]T
}

func newPathCache[T any]() *pathCache[T] {
	return &pathCache[T]{data: make(map[string]T)}
}

// getOrLoad returns the cached value for path, loading it with loader
// on first access. Concurrent callers for the same path that race will
// serialize on the write lock; only one load actually runs.
func (c *pathCache[T]) getOrLoad(path string, loader func(string) (T, error)) (T, error) {
	c.mu.RLock()
	if v, ok := c.data[path]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[path]; ok {
		return v, nil
	}
	v, err := loader(path)
	if err != nil {
		var zero T
		return zero, err
	}
	c.data[path] = v
	return v, nil
}

// clear drops all cached entries; used by tests only.
func (c *pathCache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]T)
}
