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
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
	"github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
	"github.com/NVIDIA/recipe-finder/pkg/server"
)

// Handler serves the search pipeline over HTTP.
type Handler struct {
	Finder *Finder
}

// NewHandler returns a Handler for f.
func NewHandler(f *Finder) *Handler {
	return &Handler{Finder: f}
}

// HandleSearch processes search requests. GET reads query parameters; POST
// reads a JSON or YAML body picked by Content-Type. Both ok and no_results
// outcomes answer 200 with the Result.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	var req *Request
	var err error

	switch r.Method {
	case http.MethodGet:
		req = ParseRequestFromQuery(r.URL.Query())
	case http.MethodPost:
		req, err = readSearchBody(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid search request", nil)
		return
	}

	slog.Debug("search request",
		"requestID", server.RequestID(r.Context()),
		"ingredients", req.Ingredients,
		"mood", req.Mood,
		"exclude", req.Exclude,
		"time", req.Time,
	)

	result, err := h.Finder.Search(ctx, req)
	w.Header().Set(server.HeaderResultStatus, string(result.Status))
	if err != nil {
		writeSearchError(w, r, result, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// readSearchBody decodes a POST body of at most defaults.MaxRequestBodyBytes.
func readSearchBody(w http.ResponseWriter, r *http.Request) (*Request, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return ParseRequestFromBody(nil, "")
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"request body too large", map[string]any{"limit": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(body) == 0 {
		return ParseRequestFromBody(nil, "")
	}
	return ParseRequestFromBody(bytes.NewReader(body), r.Header.Get("Content-Type"))
}

func writeSearchError(w http.ResponseWriter, r *http.Request, result *Result, err error) {
	code := errors.CodeOf(err)
	switch code {
	case errors.ErrCodeInvalidRequest:
		server.WriteError(w, r, http.StatusBadRequest, code, result.Message, false, nil)
	case errors.ErrCodeTimeout:
		server.WriteError(w, r, http.StatusGatewayTimeout, code, result.Message, true,
			map[string]any{"error": err.Error()})
	default:
		server.WriteError(w, r, http.StatusBadGateway, errors.ErrCodeUnavailable, result.Message, true,
			map[string]any{"cause": string(code), "error": err.Error()})
	}
}

// HandleMeal returns one full record for GET /v1/meal?id=.
func (h *Handler) HandleMeal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Query parameter id is required", false, nil)
		return
	}

	if h.Finder == nil || h.Finder.Source == nil {
		server.WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			"Recipe source is not configured", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.LookupHandlerTimeout)
	defer cancel()

	meal, err := h.Finder.Source.LookupByID(ctx, id)
	if err != nil {
		code := errors.CodeOf(err)
		if code != errors.ErrCodeTimeout {
			code = errors.ErrCodeUnavailable
		}
		server.WriteError(w, r, server.HTTPStatusFromCode(code), code, MessageFailed, true,
			map[string]any{"id": id, "error": err.Error()})
		return
	}

	if meal == nil {
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"Meal not found", false, map[string]any{"id": id})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, meal)
}
