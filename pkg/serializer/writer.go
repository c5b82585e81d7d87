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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer writes a value somewhere in some format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

type encodeFunc func(out io.Writer, v any) error

var encoders = map[Format]encodeFunc{
	FormatJSON:  encodeJSON,
	FormatYAML:  encodeYAML,
	FormatTable: writeTable,
}

var _ Serializer = (*Writer)(nil)

// Writer serializes values to an output stream. Writers created by
// NewFileWriterOrStdout own their file and must be closed.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer. A nil output means stdout; an unknown format
// falls back to JSON with a warning.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter is NewWriter to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout writes to path, or to stdout when path is blank or
// cannot be created.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file, using stdout", "path", path, "error", err)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w
}

// Close releases the output file, if any. Repeated calls are no-ops.
func (w *Writer) Close() error {
	c := w.closer
	w.closer = nil
	if c == nil {
		return nil
	}
	return c.Close()
}

// Serialize writes v in the writer's format. Writes are blocking, so ctx
// only satisfies Serializer.
func (w *Writer) Serialize(_ context.Context, v any) error {
	encode, ok := encoders[w.format]
	if !ok {
		return fmt.Errorf("unsupported format: %s", w.format)
	}
	return encode(w.output, v)
}

func encodeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func encodeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return enc.Close()
}
