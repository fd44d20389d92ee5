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


package core

import (
	"fmt"
	"strings"
)

// StoreSuffix is appended to a domain label to form its index directory name.
// The suffix is fixed; adding a domain means ingesting an index under
// "<label><StoreSuffix>" and registering the label here. The two must stay
// in sync.
const StoreSuffix = "_chroma"

// Registry is the closed, ordered set of domain labels the system routes
// between. It is immutable after construction.
type Registry struct {
	labels []string
	index  map[string]struct{}
}

// NewRegistry builds a registry from the given labels.
// Labels must be unique, non-empty, lowercase single words.
func NewRegistry(labels ...string) (*Registry, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]struct{}, len(labels)),
	}
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return nil, err
		}
		if _, ok := r.index[label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		r.labels = append(r.labels, label)
		r.index[label] = struct{}{}
	}
	return r, nil
}

// DefaultRegistry returns the reference domain set: legal, code, finance.
func DefaultRegistry() *Registry {
	r, err := NewRegistry("legal", "code", "finance")
	if err != nil {
		// The reference labels are static and valid.
		panic(err)
	}
	return r
}

// Labels returns the registered labels in registration order.
// The returned slice is a copy.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Contains reports whether label is registered.
func (r *Registry) Contains(label string) bool {
	_, ok := r.index[label]
	return ok
}

// StoreDir returns the index directory name for a label: "<label>_chroma".
func (r *Registry) StoreDir(label string) string {
	return label + StoreSuffix
}

// Parse validates an untrusted label string against the registry.
// The input is trimmed and lowercased first, since it typically comes back
// from a generative model. Labels outside the registry yield ErrUnknownDomain.
func (r *Registry) Parse(s string) (Domain, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	if !r.Contains(label) {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
	return Domain(label), nil
}

// ValidateDomainLabel checks that a label is usable as a domain name:
// non-empty, lowercase, single word. Ingestion accepts labels that are not
// (yet) registered for routing, so this is the only gate on the write path.
func ValidateDomainLabel(label string) error {
	return validateLabel(label)
}

func validateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("%w: empty", ErrInvalidLabel)
	}
	if strings.ToLower(label) != label || strings.ContainsAny(label, " \t\n") {
		return fmt.Errorf("%w: %q must be a single lowercase word", ErrInvalidLabel, label)
	}
	return nil
}
