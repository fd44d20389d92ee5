// Package router classifies questions into registered domains.
//
// Routing is a single completion-engine call: a fixed instruction prompt
// lists the valid domain labels and asks the model to return exactly one
// verbatim. The model's output is untrusted; it is normalized and validated
// against the registry before anything downstream sees it, so a Router can
// only ever yield a registered domain or an explicit error.
package router
