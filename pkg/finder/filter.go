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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

// MergeSummaries concatenates per-term lists in term order and keeps the
// first occurrence of each id.
func MergeSummaries(lists [][]mealdb.Summary) []mealdb.Summary {
	seen := make(map[string]struct{})
	out := make([]mealdb.Summary, 0)
	for _, list := range lists {
		for _, s := range list {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// FilterExcluded drops meals with any ingredient containing exclude,
// case-insensitively. Blank exclude text keeps every meal. Order is preserved.
func FilterExcluded(meals []mealdb.Meal, exclude string) []mealdb.Meal {
	needle := strings.TrimSpace(exclude)
	if needle == "" {
		return meals
	}

	// a Caser keeps state, one per call
	lower := cases.Lower(language.Und)
	needle = lower.String(needle)

	out := make([]mealdb.Meal, 0, len(meals))
	for _, m := range meals {
		if !usesIngredient(m, needle, lower) {
			out = append(out, m)
		}
	}
	return out
}

func usesIngredient(m mealdb.Meal, needle string, lower cases.Caser) bool {
	for _, ing := range m.Ingredients {
		if strings.Contains(lower.String(ing.Name), needle) {
			return true
		}
	}
	return false
}

// ApplyTimeCap keeps the first Cap() meals for the bucket.
func ApplyTimeCap(meals []mealdb.Meal, bucket TimeBucket) []mealdb.Meal {
	limit := bucket.Cap()
	if limit < 0 || len(meals) <= limit {
		return meals
	}
	return meals[:limit]
}
