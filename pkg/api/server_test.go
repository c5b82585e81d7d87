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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/recipe-finder/pkg/finder"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb/mealdbtest"
	"github.com/NVIDIA/recipe-finder/pkg/server"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	assert.Equal(t, "finderd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	up := mealdbtest.NewServer(t, mealdbtest.Fixture{
		Filters: map[string][]string{
			"chicken": {"1", "2"},
			"rice":    {"2"},
		},
		Dishes: map[string]mealdbtest.Dish{
			"1": {ID: "1", Name: "Chicken Curry", Ingredients: []string{"Chicken"}},
			"2": {ID: "2", Name: "Chicken Rice", Ingredients: []string{"Chicken", "Rice"}},
		},
		FailTerms: map[string]bool{"boom": true},
	})

	f := finder.NewFinder(mealdb.NewClient(mealdb.WithBaseURL(up.URL)))
	s := server.New(
		server.WithName("test"),
		server.WithVersion("test"),
		server.WithHandler(Routes(f)),
	)
	return s.Handler()
}

func TestRoutes(t *testing.T) {
	routes := Routes(finder.NewFinder(mealdb.NewClient()))
	require.Len(t, routes, 2)
	assert.NotNil(t, routes["/v1/search"])
	assert.NotNil(t, routes["/v1/meal"])
}

func TestSearchEndpoint(t *testing.T) {
	h := newTestAPI(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		ctype      string
		wantStatus int
		wantIDs    []string
	}{
		{"get merges terms", http.MethodGet, "/v1/search?ingredients=chicken,rice", "", "", http.StatusOK, []string{"1", "2"}},
		{"get with exclusion", http.MethodGet, "/v1/search?ingredients=chicken&exclude=RICE", "", "", http.StatusOK, []string{"1"}},
		{"post json", http.MethodPost, "/v1/search", `{"ingredients":"rice"}`, "application/json", http.StatusOK, []string{"2"}},
		{"post yaml", http.MethodPost, "/v1/search", "ingredients: rice\n", "application/x-yaml", http.StatusOK, []string{"2"}},
		{"no results", http.MethodGet, "/v1/search?ingredients=durian", "", "", http.StatusOK, nil},
		{"malformed body", http.MethodPost, "/v1/search", "{", "application/json", http.StatusBadRequest, nil},
		{"upstream failure", http.MethodGet, "/v1/search?ingredients=chicken,boom", "", "", http.StatusBadGateway, nil},
		{"method not allowed", http.MethodDelete, "/v1/search", "", "", http.StatusMethodNotAllowed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.ctype != "" {
				req.Header.Set("Content-Type", tt.ctype)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var res finder.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			got := make([]string, 0, len(res.Meals))
			for _, m := range res.Meals {
				got = append(got, m.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, got)
				assert.Equal(t, finder.StatusNoResults, res.Status)
				return
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestMealEndpoint(t *testing.T) {
	h := newTestAPI(t)

	for _, tt := range []struct {
		target string
		want   int
	}{
		{"/v1/meal?id=2", http.StatusOK},
		{"/v1/meal?id=99", http.StatusNotFound},
		{"/v1/meal", http.StatusBadRequest},
	} {
		t.Run(tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSearchEndpointConcurrency(t *testing.T) {
	h := newTestAPI(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/search?ingredients=chicken", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()
}
