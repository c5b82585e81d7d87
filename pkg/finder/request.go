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
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

// Mood is one of the fixed mood labels a search can be steered by.
type Mood string

const (
	MoodComfortFood Mood = "Comfort Food"
	MoodSpicy       Mood = "Spicy"
	MoodQuickMeal   Mood = "Quick Meal"
	MoodHealthy     Mood = "Healthy"
)

var moodTerms = map[Mood]string{
	MoodComfortFood: "cheese",
	MoodSpicy:       "chili",
	MoodQuickMeal:   "egg",
	MoodHealthy:     "salad",
}

// Term returns the ingredient term for the mood and whether the label is known.
func (m Mood) Term() (string, bool) {
	t, ok := moodTerms[Mood(strings.TrimSpace(string(m)))]
	return t, ok
}

// SupportedMoods lists the recognized mood labels.
func SupportedMoods() []string {
	return []string{
		string(MoodComfortFood),
		string(MoodSpicy),
		string(MoodQuickMeal),
		string(MoodHealthy),
	}
}

// TimeBucket is a cooking time preference. It only bounds how many meals are
// kept; no per-meal duration is known.
type TimeBucket string

const (
	TimeUnder15   TimeBucket = "Under 15 minutes"
	Time30To45    TimeBucket = "30–45 minutes"
	TimeHourPlus  TimeBucket = "1 hour or more"
	time30To45Alt TimeBucket = "30-45 minutes"
)

// Cap returns the maximum list length for the bucket, or -1 for no cap.
// Unset and unrecognized buckets are uncapped.
func (b TimeBucket) Cap() int {
	switch TimeBucket(strings.TrimSpace(string(b))) {
	case TimeUnder15:
		return 3
	case Time30To45, time30To45Alt:
		return 5
	default:
		return -1
	}
}

// SupportedTimes lists the recognized time buckets.
func SupportedTimes() []string {
	return []string{
		string(TimeUnder15),
		string(Time30To45),
		string(TimeHourPlus),
	}
}

// Request is what a person asks for.
type Request struct {
	// Ingredients is free comma-separated text, e.g. "chicken, rice".
	Ingredients string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Mood        Mood       `json:"mood,omitempty" yaml:"mood,omitempty"`
	Exclude     string     `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Time        TimeBucket `json:"time,omitempty" yaml:"time,omitempty"`
}

// ParseRequestFromQuery reads a Request from URL query parameters
// ingredients, mood, exclude and time.
func ParseRequestFromQuery(q url.Values) *Request {
	return &Request{
		Ingredients: q.Get("ingredients"),
		Mood:        Mood(strings.TrimSpace(q.Get("mood"))),
		Exclude:     q.Get("exclude"),
		Time:        TimeBucket(strings.TrimSpace(q.Get("time"))),
	}
}

// ParseRequestFromBody decodes a JSON or YAML body, chosen by contentType.
func ParseRequestFromBody(body io.Reader, contentType string) (*Request, error) {
	if body == nil || body == http.NoBody {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body is empty")
	}

	var req Request
	if err := serializer.Decode(serializer.FormatFromContentType(contentType), body, &req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "malformed request body", err)
	}

	req.Mood = Mood(strings.TrimSpace(string(req.Mood)))
	req.Time = TimeBucket(strings.TrimSpace(string(req.Time)))
	return &req, nil
}
