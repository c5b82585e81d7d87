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
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

// Source is the recipe service a Finder queries. *mealdb.Client implements it.
type Source interface {
	FilterByIngredient(ctx context.Context, term string) ([]mealdb.Summary, error)
	LookupByID(ctx context.Context, id string) (*mealdb.Meal, error)
}

// Finder runs the search pipeline against a Source.
type Finder struct {
	// Source is the recipe service. Required.
	Source Source

	// Concurrency caps in-flight upstream requests per stage. Zero or
	// negative means one goroutine per request.
	Concurrency int
}

// NewFinder returns a Finder over source with unbounded fan-out.
func NewFinder(source Source) *Finder {
	return &Finder{Source: source}
}

// Find runs one search cycle. The returned Result has Status StatusOK or
// StatusNoResults. Invalid input is reported as errors.ErrCodeInvalidRequest;
// any upstream failure aborts the cycle and is returned as is, with no
// partial result.
func (f *Finder) Find(ctx context.Context, req *Request) (*Result, error) {
	if f == nil || f.Source == nil {
		return nil, errors.New(errors.ErrCodeInternal, "finder has no recipe source")
	}

	terms, err := ResolveTerms(req)
	if err != nil {
		return nil, err
	}

	slog.Debug("starting search", "terms", terms)

	lists, err := f.filterAll(ctx, terms)
	if err != nil {
		return nil, err
	}
	summaries := MergeSummaries(lists)

	meals, err := f.lookupAll(ctx, summaries)
	if err != nil {
		return nil, err
	}

	res := newResult(req)
	res.Terms = terms
	res.Meals = ApplyTimeCap(FilterExcluded(meals, res.Request.Exclude), res.Request.Time)
	res.Count = len(res.Meals)
	res.Status = StatusOK
	if res.Count == 0 {
		res.Status = StatusNoResults
		res.Message = MessageNoResults
	}

	slog.Debug("search complete",
		"terms", len(terms),
		"summaries", len(summaries),
		"hydrated", len(meals),
		"meals", res.Count,
	)
	return res, nil
}

// filterAll issues one filter request per term and returns the lists in term order.
func (f *Finder) filterAll(ctx context.Context, terms []string) ([][]mealdb.Summary, error) {
	start := time.Now()
	defer func() {
		searchStageDuration.WithLabelValues("filter").Observe(time.Since(start).Seconds())
	}()

	lists := make([][]mealdb.Summary, len(terms))
	g, gctx := f.group(ctx)

	for i, term := range terms {
		g.Go(func() error {
			list, err := f.Source.FilterByIngredient(gctx, term)
			if err != nil {
				slog.Error("filter by ingredient failed", "term", term, "error", err)
				return err
			}
			// each goroutine owns its slot
			lists[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// lookupAll hydrates every summary and returns the found records in summary
// order. Summaries with no record are dropped.
func (f *Finder) lookupAll(ctx context.Context, summaries []mealdb.Summary) ([]mealdb.Meal, error) {
	start := time.Now()
	defer func() {
		searchStageDuration.WithLabelValues("lookup").Observe(time.Since(start).Seconds())
	}()

	details := make([]*mealdb.Meal, len(summaries))
	g, gctx := f.group(ctx)

	for i, s := range summaries {
		g.Go(func() error {
			m, err := f.Source.LookupByID(gctx, s.ID)
			if err != nil {
				slog.Error("lookup by id failed", "id", s.ID, "error", err)
				return err
			}
			if m == nil {
				slog.Debug("no detail for summary, dropping", "id", s.ID)
			}
			details[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]mealdb.Meal, 0, len(details))
	for _, m := range details {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *Finder) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	if f.Concurrency > 0 {
		g.SetLimit(f.Concurrency)
	}
	return g, gctx
}

// Search runs Find and folds every outcome into a Result. The error is
// returned alongside for callers that need the cause; the Result is never nil.
func (f *Finder) Search(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	res, err := f.search(ctx, req)
	observeSearch(start, res, err)
	return res, err
}

// search is Search without metrics.
func (f *Finder) search(ctx context.Context, req *Request) (*Result, error) {
	res, err := f.Find(ctx, req)
	if err != nil {
		res = failedResult(req, err)
	}
	return res, err
}

func failedResult(req *Request, err error) *Result {
	res := newResult(req)
	if errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		res.Status = StatusInvalid
		res.Message = MessageNoInput
		return res
	}
	res.Status = StatusFailed
	res.Message = MessageFailed
	return res
}
