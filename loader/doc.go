// Package loader maps file extensions to document loaders.
//
// The mapping is a closed registry of loader functions, looked up purely by
// lowercase extension string, never by path or content sniffing. Files with
// unregistered extensions are not an error; ingestion silently skips them.
package loader
