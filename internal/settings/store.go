// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package settings

import "sync"

// Store holds the current settings, which can be replaced
// at any time (e.g. on workspace/didChangeConfiguration)
type Store struct {
	mu       sync.RWMutex
	settings *Settings
}

func NewStore(s *Settings) *Store {
	return &Store{settings: s}
}

func (s *Store) Set(settings *Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Store) ForScope(scope string) *Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ForScope(scope)
}
