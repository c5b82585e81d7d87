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

// Package mealdb is a small client for the public TheMealDB JSON API.
//
// Two endpoints are used:
//
//   - filter.php?i={ingredient} returns summaries (id, name, thumbnail) of
//     meals that use an ingredient
//   - lookup.php?i={id} returns the full record of one meal
//
// The upstream answers {"meals": null} when nothing matches. The client
// normalizes that, and a missing "meals" key, to an empty result. Detail
// records carry ingredients as 20 numbered strIngredientN/strMeasureN fields;
// they are decoded into an ordered Ingredients slice with empty slots skipped.
//
// Usage:
//
//	c := mealdb.NewClient(mealdb.WithRateLimit(5))
//	summaries, err := c.FilterByIngredient(ctx, "chicken")
//	meal, err := c.LookupByID(ctx, summaries[0].ID)
//
// Transport failures and non-200 responses are returned as
// errors.ErrCodeUnavailable, undecodable payloads as errors.ErrCodeInternal.
package mealdb
