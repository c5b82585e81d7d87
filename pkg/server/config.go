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

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"golang.org/x/time/rate"
)

// Environment variables read by NewConfig.
const (
	EnvHost            = "HOST"
	EnvPort            = "PORT"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	EnvShutdownSeconds = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config is the listener, limiter and timeout setup of a Server.
type Config struct {
	Name    string
	Version string

	// Handlers are extra routes, each wrapped with the middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	// RateLimit is in requests per second, shared by all clients.
	RateLimit      rate.Limit
	RateLimitBurst int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns the defaults with environment overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	cfg.Address = os.Getenv(EnvHost)
	if v, ok := envInt(EnvPort, 1, 65535); ok {
		cfg.Port = v
	}
	if v, ok := envInt(EnvRateLimit, 1, 1_000_000); ok {
		cfg.RateLimit = rate.Limit(v)
	}
	if v, ok := envInt(EnvRateLimitBurst, 1, 1_000_000); ok {
		cfg.RateLimitBurst = v
	}
	if v, ok := envInt(EnvShutdownSeconds, 1, 3600); ok {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}

	return cfg
}

// envInt reads an integer in [lo, hi] from key. Unset keys are silently
// ignored; bad values are logged and ignored.
func envInt(key string, lo, hi int) (int, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		slog.Warn("ignoring invalid server setting", "env", key, "value", raw)
		return 0, false
	}
	return v, true
}
