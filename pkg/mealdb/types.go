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

package mealdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
)

// Summary is one entry of a filter-by-ingredient response.
type Summary struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// Ingredient is one populated ingredient slot of a meal.
type Ingredient struct {
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure,omitempty" yaml:"measure,omitempty"`
}

// String renders the ingredient as "name - measure".
func (i Ingredient) String() string {
	return fmt.Sprintf("%s - %s", i.Name, i.Measure)
}

// Meal is the full record returned by lookup.php.
type Meal struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Category     string       `json:"category,omitempty" yaml:"category,omitempty"`
	Area         string       `json:"area,omitempty" yaml:"area,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Instructions string       `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	YouTube      string       `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// IngredientLines returns the "name - measure" lines in slot order.
func (m *Meal) IngredientLines() []string {
	lines := make([]string, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		lines = append(lines, ing.String())
	}
	return lines
}

// TableHeader implements serializer.Tabular.
func (m *Meal) TableHeader() []string {
	return []string{"FIELD", "VALUE"}
}

// TableRows implements serializer.Tabular.
func (m *Meal) TableRows() [][]string {
	rows := [][]string{
		{"id", m.ID},
		{"name", m.Name},
		{"category", m.Category},
		{"area", m.Area},
	}
	for i, line := range m.IngredientLines() {
		rows = append(rows, []string{"ingredient." + strconv.Itoa(i+1), line})
	}
	if m.YouTube != "" {
		rows = append(rows, []string{"youtube", m.YouTube})
	}
	rows = append(rows, []string{"instructions", oneLine(m.Instructions)})
	return rows
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// envelope is the {"meals": [...]} wrapper shared by both endpoints.
// A null or missing list decodes to a nil slice.
type envelope struct {
	Meals []map[string]any `json:"meals"`
}

func field(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func toSummary(raw map[string]any) Summary {
	return Summary{
		ID:        strings.TrimSpace(field(raw, "idMeal")),
		Name:      field(raw, "strMeal"),
		Thumbnail: field(raw, "strMealThumb"),
	}
}

func toMeal(raw map[string]any) *Meal {
	m := &Meal{
		ID:           strings.TrimSpace(field(raw, "idMeal")),
		Name:         field(raw, "strMeal"),
		Category:     field(raw, "strCategory"),
		Area:         field(raw, "strArea"),
		Thumbnail:    field(raw, "strMealThumb"),
		Instructions: field(raw, "strInstructions"),
		YouTube:      strings.TrimSpace(field(raw, "strYoutube")),
		Ingredients:  make([]Ingredient, 0, defaults.MaxIngredientSlots),
	}
	for n := 1; n <= defaults.MaxIngredientSlots; n++ {
		name := strings.TrimSpace(field(raw, "strIngredient"+strconv.Itoa(n)))
		if name == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(field(raw, "strMeasure"+strconv.Itoa(n))),
		})
	}
	return m
}
