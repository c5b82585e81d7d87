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

package server

import (
	"net/http"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// statusHandler answers GET with the status produced by check.
func (s *Server) statusHandler(check func() (int, HealthResponse)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		code, body := check()
		body.Version = s.config.Version
		body.Uptime = time.Since(s.startedAt).Round(time.Second).String()
		body.Timestamp = time.Now().UTC()
		serializer.RespondJSON(w, code, body)
	}
}

// liveness always passes once the process is serving.
func (s *Server) liveness() (int, HealthResponse) {
	return http.StatusOK, HealthResponse{Status: statusHealthy}
}

// readiness passes between Run marking the server ready and shutdown.
func (s *Server) readiness() (int, HealthResponse) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		return http.StatusServiceUnavailable, HealthResponse{
			Status: statusNotReady,
			Reason: "service is not accepting requests",
		}
	}
	return http.StatusOK, HealthResponse{Status: statusReady}
}
