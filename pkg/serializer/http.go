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

package serializer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 8 << 20

// StatusError is returned by HttpReader when the server answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s from %s", e.Status, e.URL)
}

// HttpReaderOption configures an HttpReader.
type HttpReaderOption func(*readerSettings)

// readerSettings collects options before the client is built. Zero durations
// mean "keep the default"; they never override a caller-supplied client.
type readerSettings struct {
	userAgent      string
	total          time.Duration
	connect        time.Duration
	responseHeader time.Duration
	client         *http.Client
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(s *readerSettings) { s.userAgent = userAgent }
}

// WithTotalTimeout bounds a whole request including the body read.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(s *readerSettings) { s.total = timeout }
}

// WithConnectTimeout bounds dialing.
func WithConnectTimeout(timeout time.Duration) HttpReaderOption {
	return func(s *readerSettings) { s.connect = timeout }
}

// WithResponseHeaderTimeout bounds the wait for response headers.
func WithResponseHeaderTimeout(timeout time.Duration) HttpReaderOption {
	return func(s *readerSettings) { s.responseHeader = timeout }
}

// WithClient replaces the underlying client. Transport-level options are only
// applied when its Transport is an *http.Transport.
func WithClient(client *http.Client) HttpReaderOption {
	return func(s *readerSettings) { s.client = client }
}

// HttpReader fetches bodies over HTTP GET.
type HttpReader struct {
	UserAgent string
	Client    *http.Client
}

// NewHttpReader creates an HttpReader. Without WithClient it owns a pooled
// transport tuned with the package defaults.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	s := readerSettings{userAgent: defaults.MealDBUserAgent}
	for _, opt := range options {
		opt(&s)
	}
	if s.userAgent == "" {
		s.userAgent = defaults.MealDBUserAgent
	}

	client := s.client
	if client == nil {
		client = &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newTransport(),
		}
	}
	if s.total > 0 {
		client.Timeout = s.total
	}

	if tr, ok := client.Transport.(*http.Transport); ok && tr != nil {
		if s.connect > 0 {
			tr.DialContext = dialer(s.connect).DialContext
		}
		if s.responseHeader > 0 {
			tr.ResponseHeaderTimeout = s.responseHeader
		}
	}

	return &HttpReader{UserAgent: s.userAgent, Client: client}
}

func dialer(timeout time.Duration) *net.Dialer {
	return &net.Dialer{Timeout: timeout, KeepAlive: defaults.HTTPKeepAlive}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer(defaults.HTTPConnectTimeout).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   32,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
	}
}

// ReadWithContext fetches url and returns the body. Any status other than 200
// yields a *StatusError.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	switch {
	case url == "":
		return nil, errors.New("url is empty")
	case r.Client == nil:
		return nil, errors.New("http client is nil")
	case ctx == nil:
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", r.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return data, nil
}

// Read is ReadWithContext with a background context.
func (r *HttpReader) Read(url string) ([]byte, error) {
	return r.ReadWithContext(context.Background(), url)
}
