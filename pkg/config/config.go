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

// Package config resolves runtime settings for the recipe finder from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/finder"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

// Environment variables read by Load.
const (
	EnvBaseURL     = "MEALDB_BASE_URL"
	EnvRateLimit   = "MEALDB_RATE_LIMIT"
	EnvConcurrency = "FINDER_CONCURRENCY"
	EnvTimeout     = "MEALDB_TIMEOUT"

	// DefaultEnvFile is loaded when present and no file is named explicitly.
	DefaultEnvFile = ".env"
)

// Config holds the settings used to build a Finder.
type Config struct {
	// BaseURL of the recipe service.
	BaseURL string
	// RateLimit caps outbound requests per second, 0 is unlimited.
	RateLimit float64
	// Concurrency caps in-flight requests per fan-out stage, 0 is unbounded.
	Concurrency int
	// Timeout bounds one outbound request end to end.
	Timeout time.Duration
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. An empty path loads DefaultEnvFile if it
// exists; a named file must exist.
func LoadEnvFile(path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no env file found, using process environment", "path", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}

	slog.Debug("loaded env file", "path", path)
	return nil
}

// Load reads Config from the environment. Malformed numbers are errors.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL: defaults.MealDBBaseURL,
		Timeout: defaults.HTTPClientTimeout,
	}

	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvRateLimit)); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a non-negative number", EnvRateLimit, v)
		}
		cfg.RateLimit = rps
	}

	if v := strings.TrimSpace(os.Getenv(EnvConcurrency)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvConcurrency, v)
		}
		cfg.Concurrency = n
	}

	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive duration, e.g. 10s", EnvTimeout, v)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Client returns a recipe service client for the config.
func (c *Config) Client() *mealdb.Client {
	reader := serializer.NewHttpReader(
		serializer.WithUserAgent(defaults.MealDBUserAgent),
		serializer.WithTotalTimeout(c.Timeout),
		serializer.WithConnectTimeout(defaults.HTTPConnectTimeout),
		serializer.WithResponseHeaderTimeout(defaults.HTTPResponseHeaderTimeout),
	)
	return mealdb.NewClient(
		mealdb.WithBaseURL(c.BaseURL),
		mealdb.WithRateLimit(c.RateLimit),
		mealdb.WithHTTPReader(reader),
	)
}

// Finder returns a Finder wired to Client.
func (c *Config) Finder() *finder.Finder {
	return &finder.Finder{
		Source:      c.Client(),
		Concurrency: c.Concurrency,
	}
}
