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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyDomain indicates a chunk carries no domain label.
	ErrEmptyDomain = errors.New("domain cannot be empty")

	// ErrNegativeSeq indicates a chunk sequence number is negative.
	ErrNegativeSeq = errors.New("sequence number cannot be negative")

	// ErrUnknownDomain indicates a label outside the registered domain set.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrEmptyRegistry indicates a registry was constructed with no labels.
	ErrEmptyRegistry = errors.New("registry needs at least one domain label")

	// ErrInvalidLabel indicates a domain label that is empty or not a single
	// lowercase word.
	ErrInvalidLabel = errors.New("invalid domain label")

	// ErrDuplicateLabel indicates the same label registered twice.
	ErrDuplicateLabel = errors.New("duplicate domain label")
)
