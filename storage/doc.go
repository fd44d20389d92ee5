// Copyright 2026 Tessellate Systems
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


// Package storage provides the persistence abstraction for domain indices.
//
// Each domain owns exactly one index: a persisted collection of embedded
// chunks supporting nearest-neighbor lookup. The Layout type maps domain
// labels to index directories under a fixed base directory
// ("vector_stores/<domain>_chroma" by default); the ChunkRepository interface
// decouples the pipeline and retrievers from the backend.
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types to enforce abstraction and keep
// alternative backends swappable:
//
//	repo, err := badger.OpenIndex(path, badger.Create)  // returns storage.ChunkRepository
//
// # Lifecycle
//
// Ingestion opens an index with Create (the directory is made if absent);
// the query path opens with MustExist and receives ErrIndexNotFound for a
// domain that was never ingested. That is a configuration error, never
// silently an empty result. Re-ingestion is additive; byte-identical chunks from the same
// source position overwrite themselves because chunk keys are content hashes.
//
// # Thread Safety
//
// Implementations must be safe for concurrent readers. Concurrent writers to
// the same domain index are not coordinated at this layer.
package storage
