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


// Package ai provides abstractions for the AI services ragmux depends on.
//
// Two collaborators are defined here: an Embedder that turns text into
// vectors, and a CompletionEngine that generates text from a prompt. The
// engine serves double duty: it classifies questions into domains for the
// router and synthesizes final answers for the QA step. A Provider aggregates
// both for construction at startup; it is passed by reference into every
// component that needs it, never held as package state.
//
// # Implementation Packages
//
//   - ai/openai: production implementation over OpenAI-compatible local
//     services (Ollama, LocalAI, llama.cpp server) via langchaingo
//   - ai/mock: test doubles for unit testing without a running model
//
// # Unavailable Engine
//
// A local completion engine is a heavyweight resource that may simply not be
// there (model file missing, server down). Rather than failing provider
// construction, openai.NewProvider substitutes the engine returned by
// UnavailableEngine; every call on it reports ErrEngineUnavailable, which
// consumers convert into user-visible error results instead of crashing.
package ai
