// Package mealdbtest provides an in-process fake of the recipe service for tests.
package mealdbtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Dish describes a meal served by the fake.
type Dish struct {
	ID          string
	Name        string
	Category    string
	Area        string
	YouTube     string
	Ingredients []string
	Measures    []string
}

// Fixture is the data set the fake answers from.
type Fixture struct {
	// Filters maps an ingredient term to the ids returned for it, in order.
	// Terms absent from the map answer {"meals": null}.
	Filters map[string][]string
	// Dishes keyed by id. Ids absent from the map answer {"meals": null}.
	Dishes map[string]Dish
	// FailTerms answer 500 on filter.
	FailTerms map[string]bool
	// FailIDs answer 500 on lookup.
	FailIDs map[string]bool
	// MalformedIDs answer a body that is not JSON.
	MalformedIDs map[string]bool
}

// Server is a running fake. Close is registered with t.Cleanup.
type Server struct {
	*httptest.Server

	fixture Fixture

	mu      sync.Mutex
	filters []string
	lookups []string
}

// NewServer starts a fake serving fixture.
func NewServer(t testing.TB, fixture Fixture) *Server {
	t.Helper()

	s := &Server{fixture: fixture}
	mux := http.NewServeMux()
	mux.HandleFunc("/filter.php", s.handleFilter)
	mux.HandleFunc("/lookup.php", s.handleLookup)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// FilterCalls returns the terms requested so far, in arrival order.
func (s *Server) FilterCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.filters...)
}

// LookupCalls returns the ids requested so far, in arrival order.
func (s *Server) LookupCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lookups...)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("i")
	s.mu.Lock()
	s.filters = append(s.filters, term)
	s.mu.Unlock()

	if s.fixture.FailTerms[term] {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	ids, ok := s.fixture.Filters[term]
	if !ok {
		writeMeals(w, nil)
		return
	}

	meals := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		d := s.fixture.Dishes[id]
		meals = append(meals, map[string]any{
			"idMeal":       id,
			"strMeal":      d.Name,
			"strMealThumb": "https://img.example/" + id + ".jpg",
		})
	}
	writeMeals(w, meals)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("i")
	s.mu.Lock()
	s.lookups = append(s.lookups, id)
	s.mu.Unlock()

	if s.fixture.FailIDs[id] {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	if s.fixture.MalformedIDs[id] {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>oops</html>"))
		return
	}

	d, ok := s.fixture.Dishes[id]
	if !ok {
		writeMeals(w, nil)
		return
	}
	writeMeals(w, []map[string]any{d.raw()})
}

// raw renders the dish in the upstream wire shape, 20 numbered slots
// with unused ones alternating between "" and null.
func (d Dish) raw() map[string]any {
	m := map[string]any{
		"idMeal":          d.ID,
		"strMeal":         d.Name,
		"strCategory":     d.Category,
		"strArea":         d.Area,
		"strInstructions": fmt.Sprintf("Cook %s.", strings.ToLower(d.Name)),
		"strMealThumb":    "https://img.example/" + d.ID + ".jpg",
		"strYoutube":      d.YouTube,
	}
	for n := 1; n <= 20; n++ {
		var ing, measure any
		if n%2 == 0 {
			ing, measure = "", ""
		}
		if n <= len(d.Ingredients) {
			ing = d.Ingredients[n-1]
			measure = ""
			if n <= len(d.Measures) {
				measure = d.Measures[n-1]
			}
		}
		m[fmt.Sprintf("strIngredient%d", n)] = ing
		m[fmt.Sprintf("strMeasure%d", n)] = measure
	}
	return m
}

func writeMeals(w http.ResponseWriter, meals []map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"meals": meals})
}
