// Copyright 2026 The Akton ARN Authors
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

package resid

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry maps well-known tags to a human-readable resource kind. It exists
// for tooling that describes identifiers; Parse never consults it.
type Registry struct {
	tags  []Tag
	byTag map[Tag]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[Tag]string)}
}

// Register adds a tag and the resource kind it names.
func (r *Registry) Register(t Tag, kind string) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, ok := r.byTag[t]; ok {
		return errors.Errorf("tag %q already registered", t)
	}
	r.tags = append(r.tags, t)
	r.byTag[t] = kind
	return nil
}

// Describe returns the resource kind registered for a tag.
func (r *Registry) Describe(t Tag) (string, bool) {
	kind, ok := r.byTag[t]
	return kind, ok
}

// Known returns all registered tags in sorted order.
func (r *Registry) Known() []Tag {
	out := append([]Tag(nil), r.tags...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultRegistry returns a registry preloaded with the package's well-known
// tags.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, tk := range []struct {
		tag  Tag
		kind string
	}{
		{User, "user"},
		{Group, "group"},
		{Role, "role"},
		{Session, "session"},
		{Key, "signing key"},
	} {
		// Seed tags are constants validated by tests; Register cannot fail.
		if err := r.Register(tk.tag, tk.kind); err != nil {
			panic(err)
		}
	}
	return r
}
