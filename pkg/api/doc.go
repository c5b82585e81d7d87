// Package api provides the HTTP API layer for the recipe finder.
//
// This package is a thin wrapper around pkg/server, configuring it with the
// search and meal lookup routes backed by a finder.Finder.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/search  - Search by query parameters ingredients, mood, exclude and time
//   - POST /v1/search - Search with a JSON or YAML request body
//   - GET /v1/meal    - Meal details by id query parameter
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Responses
//
// A search that finds nothing is still 200 with status "no_results". Upstream
// failures answer 502 with code SERVICE_UNAVAILABLE and a generic message;
// the partial results of a failed search are never returned.
//
// # Configuration
//
//	PORT                 listen port (default 8080)
//	LOG_LEVEL            debug, info, warn, error
//	MEALDB_BASE_URL      recipe service base URL
//	MEALDB_RATE_LIMIT    outbound requests per second, 0 is unlimited
//	FINDER_CONCURRENCY   in-flight requests per search stage, 0 is unbounded
package api
