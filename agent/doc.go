// Package agent exposes ingestion behind a small command interface.
//
// A ResearchAgent accepts textual commands ("ingest" with a domain and a
// folder) and delegates to the ingestion facade. Unrecognized commands fail
// fast with ErrUnsupportedCommand.
package agent
