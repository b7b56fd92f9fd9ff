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

package arn

import (
	"github.com/akton/arn/pkg/resid"
	"github.com/pkg/errors"
)

// Builder assembles an Arn segment by segment. Validation happens once, in
// Build, through the same routines as Parse and New.
//
//	a, err := arn.NewBuilder().
//		Partition("prod").
//		Service("billing").
//		Category("acct1").
//		Tag(resid.User).
//		Build()
type Builder struct {
	partition string
	service   string
	category  string
	tag       resid.Tag
	id        resid.ID
	hasID     bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Partition sets the deployment realm segment.
func (b *Builder) Partition(p string) *Builder {
	b.partition = p
	return b
}

// Service sets the owning subsystem segment.
func (b *Builder) Service(s string) *Builder {
	b.service = s
	return b
}

// Category sets the grouping segment. It may be left unset; the segment then
// serializes as an empty string.
func (b *Builder) Category(c string) *Builder {
	b.category = c
	return b
}

// Tag sets the type tag for a freshly generated identifier. Ignored if ID is
// also called.
func (b *Builder) Tag(t resid.Tag) *Builder {
	b.tag = t
	return b
}

// ID supplies an explicit identifier instead of generating one.
func (b *Builder) ID(id resid.ID) *Builder {
	b.id = id
	b.hasID = true
	return b
}

// Build validates the collected segments and returns the Arn. Without an
// explicit ID it generates a fresh identifier for the configured tag.
func (b *Builder) Build() (Arn, error) {
	if !b.hasID {
		return New(b.partition, b.service, b.category, b.tag)
	}
	if b.id.IsZero() {
		return Arn{}, errors.Wrap(ErrInvalidIdentifier, "zero identifier")
	}
	return WithID(b.partition, b.service, b.category, b.id.String())
}
