// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package finder

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

// ErrSuperseded is returned by Session.Search when a newer search started
// before this one finished. The superseded outcome is not stored.
var ErrSuperseded = stderrors.New("search superseded by a newer request")

// State is a snapshot of a Session.
type State struct {
	Loading  bool         `json:"loading" yaml:"loading"`
	Result   *Result      `json:"result,omitempty" yaml:"result,omitempty"`
	Message  string       `json:"message,omitempty" yaml:"message,omitempty"`
	Selected *mealdb.Meal `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Session holds the request/result state of one interactive caller. It is
// safe for concurrent use.
type Session struct {
	finder *Finder

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	loading  bool
	result   *Result
	selected *mealdb.Meal
}

// NewSession returns an idle Session over f.
func NewSession(f *Finder) *Session {
	return &Session{finder: f}
}

// Search starts a cycle, cancelling any cycle still in flight. Previous
// meals, message and selection are cleared immediately. The Result is never
// nil; when the cycle was superseded the error is ErrSuperseded and the
// session state is left to the newer cycle.
func (s *Session) Search(ctx context.Context, req *Request) (*Result, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.loading = true
	s.result = nil
	s.selected = nil
	s.mu.Unlock()

	start := time.Now()
	res, err := s.finder.search(cctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		searchSuperseded.Inc()
		return res, ErrSuperseded
	}
	observeSearch(start, res, err)
	s.cancel = nil
	s.loading = false
	s.result = res
	return res, err
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Loading:  s.loading,
		Result:   s.result,
		Selected: s.selected,
	}
	if s.result != nil {
		st.Message = s.result.Message
	}
	return st
}

// Select marks the meal with id from the current result as selected.
func (s *Session) Select(id string) (*mealdb.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.result.Meal(id)
	if m == nil {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"meal is not part of the current result", map[string]any{"id": id})
	}
	s.selected = m
	return m, nil
}

// ClearSelection unsets the selected meal.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}
