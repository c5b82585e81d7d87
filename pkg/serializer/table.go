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
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
)

// Tabular is implemented by values that lay themselves out as columns.
// Table output prefers it over FIELD/VALUE flattening.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

const emptyTable = "<empty>"

func writeTable(out io.Writer, v any) error {
	if t, ok := v.(Tabular); ok {
		return writeColumns(out, t.TableHeader(), t.TableRows())
	}

	flat := map[string]any{}
	flatten(flat, reflect.ValueOf(v), "")

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, fmt.Sprint(flat[k])}
	}
	return writeColumns(out, []string{"FIELD", "VALUE"}, rows)
}

func writeColumns(out io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, emptyTable)
		return err
	}

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, line := range append([][]string{header, rule}, rows...) {
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
	return tw.Flush()
}

// flatten walks v and records each leaf under a dotted key path such as
// "Dish.Name" or "Tags.[0]". A top-level scalar is stored under "value".
func flatten(out map[string]any, v reflect.Value, key string) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			if key != "" {
				out[key] = nil
			}
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	//nolint:exhaustive // remaining kinds are leaves
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				flatten(out, v.Field(i), join(key, f.Name))
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			flatten(out, iter.Value(), join(key, fmt.Sprint(iter.Key().Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			flatten(out, v.Index(i), join(key, fmt.Sprintf("[%d]", i)))
		}
	default:
		if key == "" {
			key = "value"
		}
		out[key] = v.Interface()
	}
}

func join(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "." + name
	}
}
