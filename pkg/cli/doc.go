// Package cli implements the finder command-line interface.
//
// # Commands
//
// search - Find recipes:
//
//	finder search --ingredients "chicken, rice" [--exclude beef] [--time "Under 15 minutes"]
//	finder search --mood Spicy --format table
//	finder search --request request.yaml --time "1 hour or more"
//
// Each ingredient term is queried concurrently, matches are merged in the
// order they were first seen and every match is hydrated with its full
// details. When no ingredients are given the mood picks one term, falling
// back to chicken. The command exits non-zero when the input is invalid or
// the recipe service fails; an empty result set is not an error.
//
// lookup - Show one meal:
//
//	finder lookup --id 52772 --format table
//
// serve - Run the HTTP API:
//
//	finder serve
//
// # Global Flags
//
//	--log-level    debug, info, warn or error (default: LOG_LEVEL or info)
//	--base-url     recipe service base URL (default: MEALDB_BASE_URL or TheMealDB)
//	--env-file     env file loaded before the environment is read (default: .env if present)
//
// Command flags:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
package cli
