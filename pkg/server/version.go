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
	"mime"
	"net/http"
	"strings"
)

// DefaultAPIVersion is served when the client does not ask for one.
const DefaultAPIVersion = "v1"

// HeaderAPIVersion echoes the negotiated version on every response.
const HeaderAPIVersion = "X-API-Version"

const vendorMediaPrefix = "application/vnd.recipe-finder."

var apiVersions = []string{"v1"}

// negotiateAPIVersion honors the first supported vendor media type in Accept,
// such as application/vnd.recipe-finder.v1+json, and otherwise yields v1.
func negotiateAPIVersion(r *http.Request) string {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		media, _, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}
		rest, ok := strings.CutPrefix(media, vendorMediaPrefix)
		if !ok {
			continue
		}
		if v, _, _ := strings.Cut(rest, "+"); isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	for _, v := range apiVersions {
		if v == version {
			return true
		}
	}
	return false
}

// SetAPIVersionHeader sets the X-API-Version response header.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set(HeaderAPIVersion, version)
}
