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
	"context"
	stderrors "errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/NVIDIA/recipe-finder/pkg/errors"
	"github.com/NVIDIA/recipe-finder/pkg/serializer"
)

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HTTPStatusFromCode maps an error code to the HTTP status it is served with.
func HTTPStatusFromCode(code cerrors.ErrorCode) int {
	return code.HTTPStatus()
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestIDFrom(r.Context()),
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err using its StructuredError code, message, and
// context. Errors without a code are served as INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	code := cerrors.CodeOf(err)
	message := fallbackMessage

	var details map[string]any
	var se *cerrors.StructuredError
	if stderrors.As(err, &se) {
		if se.Message != "" {
			message = se.Message
		}
		details = mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
	} else if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	} else {
		details = mergeDetails(extraDetails, nil)
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, code.Retryable(), details)
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
