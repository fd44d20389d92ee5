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


package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tessellate-ai/ragmux/core"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// LoadFunc loads a single file into raw text documents.
// Implementations own opening and closing the file.
type LoadFunc func(ctx context.Context, path string) ([]core.Document, error)

// Registry is a closed mapping from lowercase file extension (including the
// leading dot) to a loader. It is immutable after construction.
type Registry struct {
	loaders map[string]LoadFunc
}

// NewRegistry returns the default loader registry:
//
//	.txt .md   plain text
//	.csv       row-per-document CSV
//	.pdf       PDF text extraction
//	.html .htm HTML text extraction
func NewRegistry() *Registry {
	return &Registry{
		loaders: map[string]LoadFunc{
			".txt":  loadText,
			".md":   loadText,
			".csv":  loadCSV,
			".pdf":  loadPDF,
			".html": loadHTML,
			".htm":  loadHTML,
		},
	}
}

// Lookup returns the loader registered for ext.
// The lookup is a pure function of the lowercase extension string.
func (r *Registry) Lookup(ext string) (LoadFunc, bool) {
	fn, ok := r.loaders[strings.ToLower(ext)]
	return fn, ok
}

// Supported reports whether the file at path has a registered loader.
func (r *Registry) Supported(path string) bool {
	_, ok := r.Lookup(filepath.Ext(path))
	return ok
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load loads the file at path with the loader registered for its extension.
// Returns ok=false without error when the extension is unregistered, so
// callers can skip unsupported files without treating them as failures.
func (r *Registry) Load(ctx context.Context, path string) (docs []core.Document, ok bool, err error) {
	fn, ok := r.Lookup(filepath.Ext(path))
	if !ok {
		return nil, false, nil
	}
	docs, err = fn(ctx, path)
	if err != nil {
		return nil, true, fmt.Errorf("loading %s: %w", path, err)
	}
	return docs, true, nil
}

func loadText(ctx context.Context, path string) ([]core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewText(f).Load(ctx)
	if err != nil {
		return nil, err
	}
	return fromSchema(path, docs), nil
}

func loadCSV(ctx context.Context, path string) ([]core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewCSV(f).Load(ctx)
	if err != nil {
		return nil, err
	}
	return fromSchema(path, docs), nil
}

func loadPDF(ctx context.Context, path string) ([]core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	docs, err := documentloaders.NewPDF(f, info.Size()).Load(ctx)
	if err != nil {
		return nil, err
	}
	return fromSchema(path, docs), nil
}

func loadHTML(ctx context.Context, path string) ([]core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewHTML(f).Load(ctx)
	if err != nil {
		return nil, err
	}
	return fromSchema(path, docs), nil
}

// fromSchema converts langchaingo documents to core documents, attaching the
// source path. Empty pages are dropped.
func fromSchema(path string, docs []schema.Document) []core.Document {
	out := make([]core.Document, 0, len(docs))
	for _, d := range docs {
		if d.PageContent == "" {
			continue
		}
		out = append(out, core.Document{
			Source: path,
			Text:   d.PageContent,
		})
	}
	return out
}
