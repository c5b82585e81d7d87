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

// Package defaults holds the tuning constants shared by the recipe finder
// binaries: server limits and handler deadlines in server.go, the TheMealDB
// endpoint and outbound transport settings in client.go.
//
// Values here are compile-time defaults. Runtime overrides go through
// pkg/config and pkg/server environment variables.
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SearchHandlerTimeout)
//	defer cancel()
package defaults
