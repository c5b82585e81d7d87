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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finder_search_duration_seconds",
			Help:    "Time taken by one complete search cycle",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	searchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finder_search_total",
			Help: "Total number of search cycles by outcome",
		},
		[]string{"status"}, // ok, no_results, invalid, failed
	)

	searchStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finder_search_stage_duration_seconds",
			Help:    "Time taken by each fan-out stage of a search",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"stage"}, // filter, lookup
	)

	searchSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finder_search_superseded_total",
			Help: "Total number of session searches cancelled by a newer one",
		},
	)

	searchResultCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "finder_search_results",
			Help: "Number of meals in the last completed search",
		},
	)
)

func observeSearch(start time.Time, res *Result, err error) {
	searchDuration.Observe(time.Since(start).Seconds())
	searchTotal.WithLabelValues(string(res.Status)).Inc()
	if err == nil {
		searchResultCount.Set(float64(res.Count))
	}
}
