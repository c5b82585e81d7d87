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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/errors"
)

func lookupCmd() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Show the full details of a single meal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "meal ID (e.g., 52772)",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			id := strings.TrimSpace(cmd.String("id"))
			if id == "" {
				return errors.New(errors.ErrCodeInvalidRequest, "meal id is required")
			}

			cfg, err := configFrom(ctx)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.LookupHandlerTimeout)
			defer cancel()

			meal, err := cfg.Client().LookupByID(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to look up meal %q: %w", id, err)
			}
			if meal == nil {
				return errors.New(errors.ErrCodeNotFound, fmt.Sprintf("meal %q not found", id))
			}

			return writeOutput(ctx, outFormat, cmd.String("output"), meal)
		},
	}
}
