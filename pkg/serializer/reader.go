package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads one JSON or YAML document from in into v, which must be a
// pointer. Table output cannot be read back.
func Decode(format Format, in io.Reader, v any) error {
	if in == nil {
		return fmt.Errorf("no %s input", format)
	}

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(in).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(in).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("format %q cannot be decoded", format)
	}
	return nil
}

// FromFile loads a JSON or YAML document into T from a local path or an
// http(s) URL, picking the format from the extension.
//
//	req, err := FromFile[finder.Request]("request.yaml")
func FromFile[T any](p string) (*T, error) {
	return FromFileWithContext[T](context.Background(), p)
}

// FromFileWithContext is FromFile with ctx bounding the remote fetch.
func FromFileWithContext[T any](ctx context.Context, p string) (*T, error) {
	format := FormatFromPath(p)

	data, err := load(ctx, p)
	if err != nil {
		return nil, err
	}

	var v T
	if err := Decode(format, bytes.NewReader(data), &v); err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", p, err)
	}

	slog.Debug("loaded file", "path", p, "format", format, "bytes", len(data))
	return &v, nil
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

func load(ctx context.Context, p string) ([]byte, error) {
	if isRemote(p) {
		data, err := NewHttpReader().ReadWithContext(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %q: %w", p, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", p, err)
	}
	return data, nil
}
