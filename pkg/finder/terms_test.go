package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTerms(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want []string
	}{
		{
			name: "ingredients split and trimmed",
			req:  &Request{Ingredients: " chicken ,rice,, ,  garlic "},
			want: []string{"chicken", "rice", "garlic"},
		},
		{
			name: "duplicates kept",
			req:  &Request{Ingredients: "egg,egg"},
			want: []string{"egg", "egg"},
		},
		{
			name: "mood ignored when ingredients given",
			req:  &Request{Ingredients: "beef", Mood: MoodHealthy},
			want: []string{"beef"},
		},
		{name: "comfort food", req: &Request{Mood: MoodComfortFood}, want: []string{"cheese"}},
		{name: "spicy", req: &Request{Mood: MoodSpicy}, want: []string{"chili"}},
		{name: "quick meal", req: &Request{Mood: MoodQuickMeal}, want: []string{"egg"}},
		{name: "healthy", req: &Request{Mood: MoodHealthy}, want: []string{"salad"}},
		{name: "padded mood", req: &Request{Mood: " Spicy "}, want: []string{"chili"}},
		{name: "only commas fall back to mood", req: &Request{Ingredients: " , ,", Mood: MoodSpicy}, want: []string{"chili"}},
		{name: "unknown mood", req: &Request{Mood: "Sad"}, want: []string{"chicken"}},
		{name: "mood match is exact", req: &Request{Mood: "spicy"}, want: []string{"chicken"}},
		{name: "empty request", req: &Request{}, want: []string{"chicken"}},
		{name: "nil request", req: nil, want: []string{"chicken"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTerms(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitIngredients(t *testing.T) {
	assert.Nil(t, SplitIngredients(""))
	assert.Nil(t, SplitIngredients(" , "))
	assert.Equal(t, []string{"a b", "c"}, SplitIngredients("a b , c"))
}

func TestSupportedMoods(t *testing.T) {
	for _, label := range SupportedMoods() {
		_, ok := Mood(label).Term()
		assert.True(t, ok, label)
	}
	assert.Len(t, SupportedMoods(), 4)
}
