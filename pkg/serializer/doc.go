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

// Package serializer provides encoding and decoding of search data in multiple formats.
//
// # Overview
//
// The serializer package converts recipe search results and requests between Go
// structures and JSON, YAML, or human-readable tables. It also carries the tuned
// outbound HTTP reader used to talk to the upstream recipe service and the
// RespondJSON helper used by HTTP handlers.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation
//   - Suitable for API responses and programmatic consumption
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for request files kept under version control
//
// Table:
//   - Column output for values implementing Tabular, flattened FIELD/VALUE otherwise
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	req, err := serializer.FromFile[finder.Request]("request.yaml")
//
// Request bodies pick their decoder from the Content-Type header:
//
//	err := serializer.Decode(serializer.FormatFromContentType(ct), body, &req)
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
package serializer
