// Copyright 2025 Hunnit Labs
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


// Package vectorstore defines the similarity-store contract the pipeline
// retrieves candidate chunks from.
//
// One point is stored per product (one vector per product, not per
// chunk), keyed by product ID with a payload copy of the display fields.
// The vector width is fixed at collection-creation time and must match
// every subsequently indexed vector.
//
// Implementations:
//
//   - vectorstore/qdrant: production implementation over the Qdrant gRPC API
//   - vectorstore/mock: in-memory cosine store for tests
package vectorstore
