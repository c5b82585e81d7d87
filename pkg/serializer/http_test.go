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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NVIDIA/recipe-finder/pkg/defaults"
)

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	if r.UserAgent != defaults.MealDBUserAgent {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("Timeout = %v", r.Client.Timeout)
	}

	r = NewHttpReader(WithUserAgent(""), WithTotalTimeout(0))
	if r.UserAgent != defaults.MealDBUserAgent {
		t.Errorf("empty UserAgent not defaulted: %q", r.UserAgent)
	}
	if r.Client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("zero timeout overrode default: %v", r.Client.Timeout)
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("test-agent"),
		WithTotalTimeout(3*time.Second),
		WithResponseHeaderTimeout(2*time.Second),
		WithConnectTimeout(time.Second),
	)

	if r.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", r.Client.Timeout)
	}
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	if tr.ResponseHeaderTimeout != 2*time.Second {
		t.Errorf("ResponseHeaderTimeout = %v", tr.ResponseHeaderTimeout)
	}
}

func TestNewHttpReader_WithCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 7 * time.Second}
	r := NewHttpReader(WithClient(custom))
	if r.Client != custom {
		t.Fatal("expected custom client")
	}
	if r.Client.Timeout != 7*time.Second {
		t.Errorf("custom timeout overridden: %v", r.Client.Timeout)
	}
}

func TestHttpReader_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if got := r.Header.Get("User-Agent"); got != "ua-check" {
				http.Error(w, "bad agent "+got, http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"meals":null}`))
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader(WithUserAgent("ua-check"))

	t.Run("success", func(t *testing.T) {
		data, err := r.Read(srv.URL + "/ok")
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(data) != `{"meals":null}` {
			t.Errorf("body = %q", data)
		}
	})

	t.Run("status errors", func(t *testing.T) {
		for path, code := range map[string]int{"/missing": 404, "/boom": 500} {
			_, err := r.Read(srv.URL + path)
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("%s: expected StatusError, got %v", path, err)
			}
			if se.StatusCode != code {
				t.Errorf("%s: StatusCode = %d, want %d", path, se.StatusCode, code)
			}
		}
	})

	t.Run("empty url", func(t *testing.T) {
		if _, err := r.Read(""); err == nil {
			t.Error("expected error for empty url")
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.ReadWithContext(ctx, srv.URL+"/ok"); err == nil {
			t.Error("expected error for canceled context")
		} else if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
