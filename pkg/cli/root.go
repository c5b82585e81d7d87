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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-finder/pkg/config"
	"github.com/NVIDIA/recipe-finder/pkg/logging"
)

const (
	name           = "finder"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

type configKey struct{}

// Execute runs the root command against os.Args and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Find meal recipes by ingredients, mood, exclusions and cooking time",
		Description: fmt.Sprintf(`Version: %s
Commit:  %s
Built:   %s

Queries TheMealDB for each ingredient term, merges and de-duplicates the
matches, hydrates their details and applies exclusion and time filters.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error), defaults to LOG_LEVEL or info",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: fmt.Sprintf("recipe service base URL, overrides %s", config.EnvBaseURL),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: fmt.Sprintf("env file to load before reading the environment (default %s if present)", config.DefaultEnvFile),
			},
		},
		Before: before,
		Commands: []*cli.Command{
			searchCmd(),
			lookupCmd(),
			serveCmd(),
		},
	}
}

// before loads the env file, configures slog and resolves the runtime config
// so every subcommand sees the same settings.
func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := config.LoadEnvFile(cmd.String("env-file")); err != nil {
		return ctx, err
	}

	logLevel := cmd.String("log-level")
	if logLevel == "" {
		logLevel = os.Getenv(logging.EnvVarLogLevel)
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)

	cfg, err := config.Load()
	if err != nil {
		return ctx, err
	}
	if u := strings.TrimSpace(cmd.String("base-url")); u != "" {
		cfg.BaseURL = u
	}

	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"baseURL", cfg.BaseURL)

	return context.WithValue(ctx, configKey{}, cfg), nil
}

// configFrom returns the config resolved by before, or one read from the
// environment when the command runs without the root.
func configFrom(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}
