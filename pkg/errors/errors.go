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

package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"net/http"
)

// ErrorCode classifies a failure for callers and for the HTTP surface.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested meal was not found upstream.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error, including undecodable upstream payloads.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates the upstream recipe service could not be reached
	// or answered with a non-success status.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

type codeInfo struct {
	status    int
	retryable bool
}

var codes = map[ErrorCode]codeInfo{
	ErrCodeInvalidRequest:    {http.StatusBadRequest, false},
	ErrCodeNotFound:          {http.StatusNotFound, false},
	ErrCodeMethodNotAllowed:  {http.StatusMethodNotAllowed, false},
	ErrCodeRateLimitExceeded: {http.StatusTooManyRequests, true},
	ErrCodeUnavailable:       {http.StatusBadGateway, true},
	ErrCodeTimeout:           {http.StatusGatewayTimeout, true},
	ErrCodeInternal:          {http.StatusInternalServerError, true},
}

// HTTPStatus is the status an error with this code is served with.
// Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether repeating the same call may succeed.
func (c ErrorCode) Retryable() bool {
	return codes[c].retryable
}

// StructuredError carries a code, a human-readable message, the underlying
// cause, and optional key/value context for logs and error bodies.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// With returns a copy of e with key set in its context.
func (e *StructuredError) With(key string, value any) *StructuredError {
	out := *e
	out.Context = make(map[string]any, len(e.Context)+1)
	maps.Copy(out.Context, e.Context)
	out.Context[key] = value
	return &out
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext is New with context attached.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap classifies cause under code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext is Wrap with context attached.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
