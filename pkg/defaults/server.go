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

package defaults

import "time"

// HTTP server limits for finderd.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerShutdownTimeout   = 30 * time.Second

	// SearchHandlerTimeout bounds one search cycle served over HTTP. It must
	// fit inside ServerWriteTimeout.
	SearchHandlerTimeout = 30 * time.Second

	// LookupHandlerTimeout bounds a single meal lookup.
	LookupHandlerTimeout = 10 * time.Second

	// MaxRequestBodyBytes caps a POST /v1/search body.
	MaxRequestBodyBytes = 64 << 10
)
