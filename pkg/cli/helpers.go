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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

// Flags keep parsed state, so every command gets its own instances.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// parseOutputFormat returns the --format value as a known serializer.Format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOutput serializes v to path, or stdout when path is empty. A close
// failure is logged rather than returned.
func writeOutput(ctx context.Context, format serializer.Format, path string, v any) error {
	w := serializer.NewFileWriterOrStdout(format, path)
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err, "path", path)
		}
	}()
	return w.Serialize(ctx, v)
}
