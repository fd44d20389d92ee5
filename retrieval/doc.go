// Package retrieval provides similarity search over persisted domain indices.
//
// A DomainRetriever binds one domain's chunk repository to the embedder and
// answers "most relevant chunks for this query" by cosine similarity. It also
// implements langchaingo's schema.Retriever so it can plug into ecosystem
// chains directly. The Set opens retrievers lazily, one per registered
// domain; a domain whose index was never ingested fails with
// storage.ErrIndexNotFound rather than pretending to be empty.
package retrieval
