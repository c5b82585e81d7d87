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
	"mime"
	"path"
	"slices"
	"strings"
)

// Format names an encoding for search output and request input.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var formats = []Format{FormatJSON, FormatYAML, FormatTable}

// IsUnknown reports whether f is none of the supported formats.
func (f Format) IsUnknown() bool {
	return !slices.Contains(formats, f)
}

// SupportedFormats lists the format names accepted by --format.
func SupportedFormats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

var extFormats = map[string]Format{
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".table": FormatTable,
	".txt":   FormatTable,
}

var mediaFormats = map[string]Format{
	"application/yaml":   FormatYAML,
	"application/x-yaml": FormatYAML,
	"text/yaml":          FormatYAML,
	"text/x-yaml":        FormatYAML,
}

// FormatFromPath picks a format from the extension of a file path or URL,
// case-insensitively. Unknown extensions yield FormatJSON.
func FormatFromPath(p string) Format {
	if i := strings.IndexAny(p, "?#"); i >= 0 && isRemote(p) {
		p = p[:i]
	}
	if f, ok := extFormats[strings.ToLower(path.Ext(p))]; ok {
		return f
	}
	return FormatJSON
}

// FormatFromContentType maps a request Content-Type header to a decode format.
// Empty or unrecognized media types yield FormatJSON.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	if f, ok := mediaFormats[mediaType]; ok {
		return f
	}
	return FormatJSON
}
