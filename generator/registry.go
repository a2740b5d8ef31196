// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Builder)
)

// Register adds a builder to the registry.
func Register(b Builder) {
	mu.Lock()
	defer mu.Unlock()
	meta := b.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("builder %q already registered", meta.Name))
	}
	registry[meta.Name] = b
}

// Get returns a builder by name.
func Get(name string) (Builder, bool) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := registry[name]
	return b, ok
}

// List returns all registered builder names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered builders, sorted by name.
func All() []Builder {
	mu.RLock()
	defer mu.RUnlock()
	builders := make([]Builder, 0, len(registry))
	for _, b := range registry {
		builders = append(builders, b)
	}
	slices.SortFunc(builders, func(a, b Builder) int {
		return cmp.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return builders
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Builder)
}
