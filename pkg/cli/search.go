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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/finder"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search recipes by ingredients or mood",
		Description: `Search TheMealDB for recipes matching the given ingredients. When no
ingredients are given the mood selects a single default term.

Meals using the excluded ingredient are removed and the cooking time
preference caps how many meals are returned.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ingredients",
				Aliases: []string{"i"},
				Usage:   "comma-separated ingredients (e.g., \"chicken, rice\")",
			},
			&cli.StringFlag{
				Name:  "mood",
				Usage: fmt.Sprintf("mood used when no ingredients are given (supported values: %v)", finder.SupportedMoods()),
			},
			&cli.StringFlag{
				Name:  "exclude",
				Usage: "ingredient to exclude, matched case-insensitively as a substring",
			},
			&cli.StringFlag{
				Name:  "time",
				Usage: fmt.Sprintf("cooking time preference (supported values: %v)", finder.SupportedTimes()),
			},
			&cli.StringFlag{
				Name:    "request",
				Aliases: []string{"f"},
				Usage: `Path/URL of a JSON or YAML search request.
	Flags given on the command line override fields loaded from the file.`,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req, err := buildRequestFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			cfg, err := configFrom(ctx)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLISearchTimeout)
			defer cancel()

			res, searchErr := cfg.Finder().Search(ctx, req)
			if searchErr != nil {
				slog.Debug("search failed", "status", res.Status, "error", searchErr)
			}

			if err := writeOutput(ctx, outFormat, cmd.String("output"), res); err != nil {
				return fmt.Errorf("failed to write search result: %w", err)
			}

			if searchErr != nil {
				return fmt.Errorf("%s: %w", res.Message, searchErr)
			}
			return nil
		},
	}
}

// buildRequestFromCmd reads the optional --request file and then applies the
// flags that were set explicitly.
func buildRequestFromCmd(ctx context.Context, cmd *cli.Command) (*finder.Request, error) {
	req := &finder.Request{}

	if path := cmd.String("request"); path != "" {
		loaded, err := serializer.FromFileWithContext[finder.Request](ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load request from %q: %w", path, err)
		}
		req = loaded
	}

	if cmd.IsSet("ingredients") {
		req.Ingredients = cmd.String("ingredients")
	}
	if cmd.IsSet("mood") {
		req.Mood = finder.Mood(strings.TrimSpace(cmd.String("mood")))
	}
	if cmd.IsSet("exclude") {
		req.Exclude = cmd.String("exclude")
	}
	if cmd.IsSet("time") {
		req.Time = finder.TimeBucket(strings.TrimSpace(cmd.String("time")))
	}

	return req, nil
}
