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


// Package catalog defines the read-only contract over the relational
// product catalog.
//
// The catalog is the single system of record. The vector index and the
// knowledge graph are derived views and must stay fully reconstructible
// from what this package returns.
//
// The catalog/sqlite sub-package provides the production implementation.
package catalog
