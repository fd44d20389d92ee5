package storage

import (
	"os"
	"path/filepath"

	"github.com/tessellate-ai/ragmux/core"
)

// DefaultBaseDir is where domain indices live unless configured otherwise.
const DefaultBaseDir = "vector_stores"

// Layout maps domain labels to index directories.
// The directory for a domain is "<base>/<label>_chroma", deterministic so
// that ingestion and query resolve the same location independently.
type Layout struct {
	base string
}

// NewLayout creates a layout rooted at base.
// An empty base falls back to DefaultBaseDir.
func NewLayout(base string) Layout {
	if base == "" {
		base = DefaultBaseDir
	}
	return Layout{base: base}
}

// Base returns the base directory.
func (l Layout) Base() string {
	return l.base
}

// DomainPath returns the index directory for a domain label.
func (l Layout) DomainPath(label string) string {
	return filepath.Join(l.base, label+core.StoreSuffix)
}

// Exists reports whether the domain's index directory exists.
func (l Layout) Exists(label string) bool {
	info, err := os.Stat(l.DomainPath(label))
	return err == nil && info.IsDir()
}
