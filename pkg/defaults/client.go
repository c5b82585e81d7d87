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

package defaults

import "time"

// TheMealDB endpoint and record shape.
const (
	// MealDBBaseURL is the public JSON API root using the free test key "1".
	MealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"

	MealDBUserAgent = "recipe-finder/1.0"

	// MaxIngredientSlots is how many strIngredientN/strMeasureN pairs a record has.
	MaxIngredientSlots = 20

	// FallbackTerm is queried when neither ingredients nor a known mood are given.
	FallbackTerm = "chicken"
)

// Outbound transport tuning. HTTPClientTimeout is overridable by MEALDB_TIMEOUT.
const (
	HTTPClientTimeout         = 30 * time.Second
	HTTPConnectTimeout        = 5 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPResponseHeaderTimeout = 10 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPKeepAlive             = 30 * time.Second
	HTTPExpectContinueTimeout = time.Second
)

// CLISearchTimeout bounds a search cycle started from the command line.
const CLISearchTimeout = 2 * time.Minute
