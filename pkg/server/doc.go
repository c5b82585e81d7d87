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

// Package server is the HTTP runtime shared by the recipe finder API.
//
// # Architecture
//
// The server is a stateless net/http server with:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Prometheus RED metrics and a /metrics endpoint
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("finderd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/search": h.HandleSearch,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Every route passed through WithHandler is wrapped in the middleware chain.
// A root handler listing the routes is added unless "/" is supplied.
//
// # System Endpoints
//
//	GET /health   always 200 {"status": "healthy"}
//	GET /ready    200 when serving, 503 before start and during shutdown
//	GET /metrics  Prometheus exposition
//
// # Rate Limiting
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per second
//	  X-RateLimit-Remaining: Tokens remaining in the bucket
//	  X-RateLimit-Reset: Unix timestamp when the bucket refills
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "SERVICE_UNAVAILABLE",
//	  "message": "Something went wrong. Please try again.",
//	  "details": {"endpoint": "filter"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr derives status and retryability from the error code:
//   - INVALID_REQUEST: 400
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - RATE_LIMIT_EXCEEDED: 429
//   - INTERNAL: 500
//   - SERVICE_UNAVAILABLE: 502 (the recipe service failed)
//   - TIMEOUT: 504
//
// Configuration comes from NewConfig, which reads PORT and
// SHUTDOWN_TIMEOUT_SECONDS from the environment.
package server
