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

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Domain must not be empty
//   - Seq must not be negative
//
// NOT validated (populated by the pipeline):
//   - Vector (can be empty until the chunk is embedded)
//   - Id (0 is valid until the content key is hashed)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	if chunk.Domain == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyDomain)
	}

	if chunk.Seq < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativeSeq)
	}

	return nil
}
