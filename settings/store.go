// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package settings

import (
	"sync"
)

// Store holds the current settings and the change subscriptions.
type Store struct {
	mu      sync.RWMutex
	current Settings

	subsMu sync.Mutex
	subs   map[int]func(Settings)
	nextID int
}

// NewStore returns a Store holding s.
func NewStore(s Settings) *Store {
	return &Store{current: s.Clone(), subs: make(map[int]func(Settings))}
}

// Current returns a copy of the current settings.
func (st *Store) Current() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current.Clone()
}

// Update validates s, makes it current and notifies subscribers in
// subscription order. Invalid settings leave the store unchanged.
func (st *Store) Update(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.mu.Lock()
	st.current = s.Clone()
	st.mu.Unlock()

	for _, fn := range st.snapshot() {
		fn(s.Clone())
	}
	return nil
}

// snapshot returns the callbacks ordered by subscription.
func (st *Store) snapshot() []func(Settings) {
	st.subsMu.Lock()
	defer st.subsMu.Unlock()
	fns := make([]func(Settings), 0, len(st.subs))
	for id := 0; id < st.nextID; id++ {
		if fn, ok := st.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Subscribe registers fn to run after every Update. The subscription
// lasts until Close.
func (st *Store) Subscribe(fn func(Settings)) *Subscription {
	st.subsMu.Lock()
	defer st.subsMu.Unlock()
	id := st.nextID
	st.nextID++
	st.subs[id] = fn
	return &Subscription{store: st, id: id}
}

// Subscribers returns the number of open subscriptions.
func (st *Store) Subscribers() int {
	st.subsMu.Lock()
	defer st.subsMu.Unlock()
	return len(st.subs)
}

func (st *Store) unsubscribe(id int) {
	st.subsMu.Lock()
	defer st.subsMu.Unlock()
	delete(st.subs, id)
}

// Subscription is a handle on a Store subscription.
type Subscription struct {
	store *Store
	id    int
	once  sync.Once
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() { s.store.unsubscribe(s.id) })
}
