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
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

// User facing messages.
const (
	MessageNoInput   = "Please enter at least one ingredient or choose a mood!"
	MessageNoResults = "No recipes found for your filters."
	MessageFailed    = "Something went wrong. Please try again."
)

// Status classifies the outcome of a search.
type Status string

const (
	StatusOK        Status = "ok"
	StatusNoResults Status = "no_results"
	StatusInvalid   Status = "invalid"
	StatusFailed    Status = "failed"
)

// Result is the outcome of one search cycle.
type Result struct {
	Request     Request       `json:"request" yaml:"request"`
	Terms       []string      `json:"terms" yaml:"terms"`
	Meals       []mealdb.Meal `json:"meals" yaml:"meals"`
	Count       int           `json:"count" yaml:"count"`
	Status      Status        `json:"status" yaml:"status"`
	Message     string        `json:"message,omitempty" yaml:"message,omitempty"`
	GeneratedAt time.Time     `json:"generatedAt" yaml:"generatedAt"`
}

func newResult(req *Request) *Result {
	r := &Result{
		Terms:       []string{},
		Meals:       []mealdb.Meal{},
		GeneratedAt: time.Now().UTC(),
	}
	if req != nil {
		r.Request = *req
	}
	return r
}

// Meal returns the meal with id from the result, or nil.
func (r *Result) Meal(id string) *mealdb.Meal {
	if r == nil {
		return nil
	}
	for i := range r.Meals {
		if r.Meals[i].ID == id {
			return &r.Meals[i]
		}
	}
	return nil
}

// TableHeader implements serializer.Tabular.
func (r *Result) TableHeader() []string {
	return []string{"ID", "NAME", "CATEGORY", "AREA", "INGREDIENTS"}
}

// TableRows implements serializer.Tabular. A result without meals renders
// its message as the only row.
func (r *Result) TableRows() [][]string {
	if len(r.Meals) == 0 {
		if r.Message == "" {
			return nil
		}
		return [][]string{{"-", r.Message, "", "", ""}}
	}
	rows := make([][]string, 0, len(r.Meals))
	for _, m := range r.Meals {
		names := make([]string, 0, len(m.Ingredients))
		for _, ing := range m.Ingredients {
			names = append(names, ing.Name)
		}
		rows = append(rows, []string{m.ID, m.Name, m.Category, m.Area,
			strconv.Itoa(len(names)) + ": " + strings.Join(names, ", ")})
	}
	return rows
}
