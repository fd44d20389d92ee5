// Package openai implements the ai interfaces over OpenAI-compatible APIs.
//
// Both the embedder and the completion engine are built on langchaingo's
// openai client, pointed at a local service such as Ollama or a llama.cpp
// server. The provider checks the configured model resource on disk before
// constructing the engine; a missing resource yields the unavailable sentinel
// engine rather than a construction error.
package openai
