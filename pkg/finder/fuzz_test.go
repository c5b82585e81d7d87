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
	"testing"

	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

func FuzzSplitIngredients(f *testing.F) {
	for _, s := range []string{"", ",", "chicken", " chicken , rice ", "a,,b", "\t,\n"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		for _, term := range SplitIngredients(text) {
			if term == "" {
				t.Fatalf("empty term from %q", text)
			}
			if strings.TrimSpace(term) != term {
				t.Fatalf("untrimmed term %q from %q", term, text)
			}
			if strings.Contains(term, ",") {
				t.Fatalf("term %q contains a comma", term)
			}
		}
	})
}

func FuzzResolveTerms(f *testing.F) {
	f.Add("", "")
	f.Add("chicken", "Spicy")
	f.Add(" , ", "Healthy")
	f.Add("", "Unknown")

	f.Fuzz(func(t *testing.T, ingredients, mood string) {
		terms, err := ResolveTerms(&Request{Ingredients: ingredients, Mood: Mood(mood)})
		if err != nil {
			t.Fatalf("ResolveTerms(%q, %q) = %v", ingredients, mood, err)
		}
		if len(terms) == 0 {
			t.Fatalf("ResolveTerms(%q, %q) returned no terms", ingredients, mood)
		}
	})
}

func FuzzFilterExcluded(f *testing.F) {
	f.Add("Beef", "beef")
	f.Add("Chicken Breast", "BREAST")
	f.Add("Rice", "")

	f.Fuzz(func(t *testing.T, ingredient, exclude string) {
		in := []mealdb.Meal{{ID: "1", Ingredients: []mealdb.Ingredient{{Name: ingredient}}}}
		out := FilterExcluded(in, exclude)
		if len(out) > len(in) {
			t.Fatalf("filter grew %d -> %d", len(in), len(out))
		}
		if strings.TrimSpace(exclude) == "" && len(out) != len(in) {
			t.Fatalf("blank exclude %q dropped meals", exclude)
		}
	})
}
