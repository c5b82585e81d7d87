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

package mealdb

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

const (
	endpointFilter = "filter"
	endpointLookup = "lookup"
)

// Client queries the recipe service. It is safe for concurrent use.
type Client struct {
	baseURL string
	reader  *serializer.HttpReader
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service root, e.g. for a local fake in tests.
// A trailing slash is ignored.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if b := strings.TrimRight(strings.TrimSpace(base), "/"); b != "" {
			c.baseURL = b
		}
	}
}

// WithRateLimit caps outbound requests per second (burst 1 per rps, minimum 1).
// Zero or negative leaves the client unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPReader sets the reader used for outbound calls.
func WithHTTPReader(r *serializer.HttpReader) Option {
	return func(c *Client) {
		if r != nil {
			c.reader = r
		}
	}
}

// NewClient returns a Client for the public service unless WithBaseURL says otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaults.MealDBBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reader == nil {
		c.reader = serializer.NewHttpReader()
	}
	return c
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FilterByIngredient returns summaries of meals using term, in upstream order.
// No match yields an empty slice. Entries without an id are dropped.
func (c *Client) FilterByIngredient(ctx context.Context, term string) ([]Summary, error) {
	u := fmt.Sprintf("%s/filter.php?i=%s", c.baseURL, url.QueryEscape(term))

	env, err := c.get(ctx, endpointFilter, u)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(env.Meals))
	for _, raw := range env.Meals {
		s := toSummary(raw)
		if s.ID == "" {
			slog.Debug("dropping summary without id", "term", term, "name", s.Name)
			continue
		}
		out = append(out, s)
	}

	slog.Debug("filtered by ingredient", "term", term, "count", len(out))
	return out, nil
}

// LookupByID returns the full record for id, or nil with no error when the
// service has no such meal.
func (c *Client) LookupByID(ctx context.Context, id string) (*Meal, error) {
	u := fmt.Sprintf("%s/lookup.php?i=%s", c.baseURL, url.QueryEscape(id))

	env, err := c.get(ctx, endpointLookup, u)
	if err != nil {
		return nil, err
	}

	if len(env.Meals) == 0 || env.Meals[0] == nil {
		slog.Debug("meal not found", "id", id)
		return nil, nil
	}

	return toMeal(env.Meals[0]), nil
}

func (c *Client) get(ctx context.Context, endpoint, u string) (*envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			upstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, transportError(endpoint, u, err)
		}
	}

	start := time.Now()
	data, err := c.reader.ReadWithContext(ctx, u)
	upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		slog.Error("recipe service request failed", "endpoint", endpoint, "error", err)
		return nil, transportError(endpoint, u, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		slog.Error("failed to decode recipe service response", "endpoint", endpoint, "error", err)
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to decode recipe service response", err,
			map[string]any{"endpoint": endpoint, "url": u})
	}

	upstreamRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	return &env, nil
}

func transportError(endpoint, u string, err error) error {
	code := errors.ErrCodeUnavailable
	if stderrors.Is(err, context.DeadlineExceeded) {
		code = errors.ErrCodeTimeout
	}

	out := errors.WrapWithContext(code, "recipe service request failed", err,
		map[string]any{"endpoint": endpoint, "url": u})
	var se *serializer.StatusError
	if stderrors.As(err, &se) {
		out = out.With("status", se.StatusCode)
	}
	return out
}
