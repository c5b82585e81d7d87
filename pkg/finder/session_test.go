package finder

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/mealdb"
)

// stallSource hangs on the terms in stall until the caller's context ends.
type stallSource struct {
	stall   map[string]bool
	started chan string
}

func (s *stallSource) FilterByIngredient(ctx context.Context, term string) ([]mealdb.Summary, error) {
	if s.stall[term] {
		s.started <- term
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []mealdb.Summary{{ID: term}}, nil
}

func (s *stallSource) LookupByID(_ context.Context, id string) (*mealdb.Meal, error) {
	return &mealdb.Meal{ID: id, Name: "Dish " + id}, nil
}

func TestSession_SearchStoresOutcome(t *testing.T) {
	s := NewSession(NewFinder(&stallSource{}))

	res, err := s.Search(context.Background(), &Request{Ingredients: "egg, rice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"egg", "rice"}, ids(res.Meals))

	st := s.State()
	assert.False(t, st.Loading)
	assert.Same(t, res, st.Result)
	assert.Empty(t, st.Message)
	assert.Nil(t, st.Selected)
}

func TestSession_NewSearchSupersedesInFlight(t *testing.T) {
	src := &stallSource{stall: map[string]bool{"slow": true}, started: make(chan string, 1)}
	s := NewSession(NewFinder(src))

	type outcome struct {
		res *Result
		err error
	}
	failedBefore := counterValue(t, searchTotal.WithLabelValues(string(StatusFailed)))
	supersededBefore := counterValue(t, searchSuperseded)

	first := make(chan outcome, 1)
	go func() {
		res, err := s.Search(context.Background(), &Request{Ingredients: "slow"})
		first <- outcome{res, err}
	}()

	select {
	case <-src.started:
	case <-time.After(time.Second):
		t.Fatal("first search never reached the source")
	}
	assert.True(t, s.State().Loading)

	res, err := s.Search(context.Background(), &Request{Ingredients: "fast"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fast"}, ids(res.Meals))

	var got outcome
	select {
	case got = <-first:
	case <-time.After(time.Second):
		t.Fatal("first search was not cancelled")
	}
	assert.ErrorIs(t, got.err, ErrSuperseded)
	assert.InDelta(t, failedBefore, counterValue(t, searchTotal.WithLabelValues(string(StatusFailed))), 0,
		"a superseded cycle is not counted as a failure")
	assert.InDelta(t, supersededBefore+1, counterValue(t, searchSuperseded), 0)

	st := s.State()
	assert.False(t, st.Loading)
	assert.Same(t, res, st.Result, "superseded cycle must not overwrite newer state")
}

func TestSession_FailureClearsPrevious(t *testing.T) {
	src := &stallSource{stall: map[string]bool{"slow": true}, started: make(chan string, 1)}
	s := NewSession(NewFinder(src))

	_, err := s.Search(context.Background(), &Request{Ingredients: "egg"})
	require.NoError(t, err)
	_, err = s.Select("egg")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-src.started
		cancel()
	}()
	res, err := s.Search(ctx, &Request{Ingredients: "slow"})
	require.Error(t, err)

	st := s.State()
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, MessageFailed, st.Message)
	assert.Empty(t, st.Result.Meals)
	assert.Nil(t, st.Selected, "a new cycle clears the selection")
}

func TestSession_Selection(t *testing.T) {
	s := NewSession(NewFinder(&stallSource{}))

	_, err := s.Select("egg")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))

	_, err = s.Search(context.Background(), &Request{Ingredients: "egg, ham"})
	require.NoError(t, err)

	m, err := s.Select("ham")
	require.NoError(t, err)
	assert.Equal(t, "Dish ham", m.Name)
	assert.Equal(t, "ham", s.State().Selected.ID)

	s.ClearSelection()
	assert.Nil(t, s.State().Selected)
	assert.NotNil(t, s.State().Result, "clearing selection keeps the result")
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
