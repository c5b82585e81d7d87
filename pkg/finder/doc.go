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

// Package finder turns a recipe search request into a filtered list of meals.
//
// A search runs in two stages. ResolveTerms turns the request into search
// terms: comma-separated ingredients when any are given, otherwise a single
// term derived from the mood, falling back to "chicken". Finder.Find then
// queries the recipe service once per term, merges the summaries keeping the
// first occurrence of each id, hydrates every unique summary into a full
// record, drops meals using the excluded ingredient, and truncates the list
// according to the cooking time preference.
//
// Any upstream failure aborts the whole search. Search wraps Find and
// converts every outcome, including failures, into a Result carrying a
// Status and the message to show a person.
//
// Session keeps the state of an interactive caller: loading flag, last
// result, and the selected meal. Starting a new search cancels the one in
// flight, and a superseded search never overwrites newer state. It is meant
// for long-lived interactive front ends that own one Session per person; the
// CLI and HTTP surfaces are stateless and call Finder.Search directly.
//
// Handler exposes the same pipeline over HTTP:
//
//	GET|POST /v1/search   query parameters or a JSON/YAML body
//	GET      /v1/meal?id= one full record
package finder
