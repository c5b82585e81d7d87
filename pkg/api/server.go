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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/recipe-finder/pkg/config"
	"github.com/NVIDIA/recipe-finder/pkg/finder"
	"github.com/NVIDIA/recipe-finder/pkg/logging"
	"github.com/NVIDIA/recipe-finder/pkg/server"
)

const (
	name           = "finderd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/recipe-finder/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It loads .env when present, configures logging from LOG_LEVEL and reads
// the recipe service settings from the environment.
func Serve() error {
	if err := config.LoadEnvFile(""); err != nil {
		return err
	}

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	return ServeWithConfig(context.Background(), cfg)
}

// ServeWithConfig runs the API server for cfg until ctx is done or the
// process receives SIGINT/SIGTERM.
func ServeWithConfig(ctx context.Context, cfg *config.Config) error {
	slog.Info("using recipe service",
		"baseURL", cfg.BaseURL,
		"rateLimit", cfg.RateLimit,
		"concurrency", cfg.Concurrency)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(cfg.Finder())),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Routes returns the application handlers served under /v1.
func Routes(f *finder.Finder) map[string]http.HandlerFunc {
	h := finder.NewHandler(f)
	return map[string]http.HandlerFunc{
		"/v1/search": h.HandleSearch,
		"/v1/meal":   h.HandleMeal,
	}
}
