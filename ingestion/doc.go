// Package ingestion provides the pipeline that turns a folder of documents
// into a persisted domain index.
//
// The Pipeline walks a source folder, loads supported files through the
// loader registry, splits the text into bounded overlapping chunks, embeds
// the chunks in concurrent batches on a worker pool, and persists them into
// the domain's chunk repository. Unsupported files are silently skipped; an
// empty or missing folder is a zero-count success, not an error.
package ingestion
