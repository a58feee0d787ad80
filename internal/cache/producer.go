// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache provides a capped, memoizing map whose values are produced on
// demand.
package cache

import "sync"

// Stats holds cache counters.
type Stats struct {
	Hits     int64 // lookups served from the cache
	Misses   int64 // lookups that called the producer
	Failures int64 // producer calls that returned an error
	Resets   int64 // times the cache was emptied after reaching its cap
	Size     int   // current number of entries
}

// Producer memoizes the results of a producer function.  When the number of
// cached entries reaches the cap the cache is emptied before the new entry is
// stored.  Errors are never cached.  A Producer is safe for concurrent use.
type Producer[K comparable, V any] struct {
	produce func(K) (V, error)
	cap     int

	mu    sync.Mutex
	items map[K]V
	stats Stats
}

// NewProducer returns a Producer calling produce for missing keys and holding
// at most capacity entries.  A non-positive capacity disables the cap.
func NewProducer[K comparable, V any](produce func(K) (V, error), capacity int) *Producer[K, V] {
	return &Producer[K, V]{
		produce: produce,
		cap:     capacity,
		items:   make(map[K]V),
	}
}

// Get returns the cached value for key, producing it when missing.
func (p *Producer[K, V]) Get(key K) (V, error) {
	p.mu.Lock()
	if v, ok := p.items[key]; ok {
		p.stats.Hits++
		p.mu.Unlock()
		return v, nil
	}
	p.stats.Misses++
	p.mu.Unlock()

	v, err := p.produce(key)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.stats.Failures++
		return v, err
	}
	if p.cap > 0 && len(p.items) >= p.cap {
		p.items = make(map[K]V)
		p.stats.Resets++
	}
	p.items[key] = v
	return v, nil
}

// Len returns the number of cached entries.
func (p *Producer[K, V]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Stats returns a snapshot of the cache counters.
func (p *Producer[K, V]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Size = len(p.items)
	return s
}
