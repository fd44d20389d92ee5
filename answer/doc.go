// Package answer composes routing, retrieval and synthesis into the query
// pipeline: route the question to a domain, fetch that domain's most relevant
// chunks, and ask the completion engine for an answer conditioned on them.
//
// The pipeline is a two-state linear machine. When the completion engine is
// unavailable the first state short-circuits into a fixed error response with
// the sentinel domain label "error"; the caller never sees a panic or an
// engine error for that case. Per-request failures (unregistered routing
// label, missing domain index) are returned as errors.
package answer
