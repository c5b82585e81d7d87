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

package finder

import (
	"strings"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/errors"
)

// ResolveTerms returns the search terms for req.
//
// Non-empty comma-separated ingredient pieces are used verbatim, in order and
// with duplicates kept, and the mood is ignored. Without ingredients the mood
// picks a single term, and an unset or unknown mood falls back to
// defaults.FallbackTerm. The error is only returned if no term can be
// produced at all.
func ResolveTerms(req *Request) ([]string, error) {
	if req == nil {
		req = &Request{}
	}

	terms := SplitIngredients(req.Ingredients)
	if len(terms) == 0 {
		term, ok := req.Mood.Term()
		if !ok {
			term = defaults.FallbackTerm
		}
		terms = []string{term}
	}

	if len(terms) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, MessageNoInput)
	}
	return terms, nil
}

// SplitIngredients splits text on commas, trims each piece, and drops empty ones.
func SplitIngredients(text string) []string {
	var out []string
	for _, piece := range strings.Split(text, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}
