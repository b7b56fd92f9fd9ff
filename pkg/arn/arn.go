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

// Package arn implements the Akton Resource Name codec.
//
// An ARN is a structured string identifier of the form
//
//	arn:<partition>:<service>:<category>:<resource_id>
//
// where partition, service, and category are short identifiers drawn from
// [A-Za-z0-9-] (category may be empty) and resource_id is a typed unique
// identifier (see package resid). The segment count is fixed: an empty
// category serializes as a zero-length string between delimiters, never as an
// omitted segment.
//
// Arn values are immutable once constructed and round-trip losslessly:
// Parse(a.String()) == a for every valid a. All construction paths (Parse,
// New, WithID, Builder) apply the same per-segment validation.
package arn

import (
	"fmt"
	"strings"

	"github.com/akton/arn/pkg/resid"
	"github.com/pkg/errors"
)

// Prefix is the literal first segment of every ARN string.
const Prefix = "arn"

// numSegments is the fixed colon-delimited segment count: the "arn" literal
// plus partition, service, category, and identifier.
const numSegments = 5

// Segment positions within the string form. Position 0 is the "arn" literal.
const (
	posPartition  = 1
	posService    = 2
	posCategory   = 3
	posIdentifier = 4
)

// The closed set of error kinds returned by this package. ErrInvalidSegment
// failures carry a *SegmentError with the offending position and value.
var (
	ErrMalformed         = errors.New("malformed ARN")
	ErrInvalidSegment    = errors.New("invalid ARN segment")
	ErrInvalidIdentifier = resid.ErrInvalid
	ErrEntropy           = resid.ErrEntropy
)

// SegmentError reports a segment that failed validation. Position is the
// index of the segment within the colon-delimited string form ("arn" literal
// is position 0).
type SegmentError struct {
	Position int
	Value    string
	Reason   string
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): %s", e.Position, e.Value, e.Reason)
}

// Unwrap ties SegmentError to ErrInvalidSegment so errors.Is works against
// the kind.
func (e *SegmentError) Unwrap() error { return ErrInvalidSegment }

// Arn is a parsed Akton Resource Name. The zero value is not a valid ARN;
// values are obtained from Parse, New, WithID, or a Builder and are immutable
// thereafter. Arn is a pure value type: freely copyable and safe to share
// across goroutines.
type Arn struct {
	partition  string
	service    string
	category   string
	resourceID resid.ID
}

// validateSegment enforces the shared per-segment rule: characters drawn
// from [A-Za-z0-9-], non-empty unless the segment is optional. Every
// construction path funnels through this one routine.
func validateSegment(pos int, value string, optional bool) error {
	if value == "" {
		if optional {
			return nil
		}
		return &SegmentError{Position: pos, Value: value, Reason: "must not be empty"}
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' {
			continue
		}
		return &SegmentError{Position: pos, Value: value, Reason: fmt.Sprintf("illegal character %q", c)}
	}
	return nil
}

func validateSegments(partition, service, category string) error {
	if err := validateSegment(posPartition, partition, false); err != nil {
		return err
	}
	if err := validateSegment(posService, service, false); err != nil {
		return err
	}
	return validateSegment(posCategory, category, true)
}

// Parse decodes the canonical string form of an ARN. Leading or trailing
// delimiters are never trimmed; they surface as a segment count mismatch.
func Parse(s string) (Arn, error) {
	segs := strings.Split(s, ":")
	if len(segs) != numSegments {
		return Arn{}, errors.Wrapf(ErrMalformed, "expected %d segments, got %d", numSegments, len(segs))
	}
	if segs[0] != Prefix {
		return Arn{}, errors.Wrapf(ErrMalformed, "expected %q prefix, got %q", Prefix, segs[0])
	}
	if err := validateSegments(segs[posPartition], segs[posService], segs[posCategory]); err != nil {
		return Arn{}, err
	}
	id, err := resid.Parse(segs[posIdentifier])
	if err != nil {
		return Arn{}, errors.Wrapf(err, "segment %d", posIdentifier)
	}
	return Arn{
		partition:  segs[posPartition],
		service:    segs[posService],
		category:   segs[posCategory],
		resourceID: id,
	}, nil
}

// MustParse is Parse for ARNs known to be valid; it panics on error.
func MustParse(s string) Arn {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// New returns an ARN for the given segments with a freshly generated
// identifier of the given tag. This is the only path that mints new
// identifier values; generation funnels through a single random-source call
// in package resid.
func New(partition, service, category string, tag resid.Tag) (Arn, error) {
	if err := validateSegments(partition, service, category); err != nil {
		return Arn{}, err
	}
	id, err := resid.New(tag)
	if err != nil {
		return Arn{}, err
	}
	return Arn{partition: partition, service: service, category: category, resourceID: id}, nil
}

// WithID returns an ARN from an explicitly supplied identifier string, e.g.
// when reconstructing a previously issued ARN without re-parsing its full
// string form. All four segments are validated.
func WithID(partition, service, category, id string) (Arn, error) {
	if err := validateSegments(partition, service, category); err != nil {
		return Arn{}, err
	}
	rid, err := resid.Parse(id)
	if err != nil {
		return Arn{}, errors.Wrapf(err, "segment %d", posIdentifier)
	}
	return Arn{partition: partition, service: service, category: category, resourceID: rid}, nil
}

// Partition returns the deployment realm segment.
func (a Arn) Partition() string { return a.partition }

// Service returns the owning subsystem segment.
func (a Arn) Service() string { return a.service }

// Category returns the grouping segment; may be empty.
func (a Arn) Category() string { return a.category }

// ResourceID returns the typed unique identifier segment.
func (a Arn) ResourceID() resid.ID { return a.resourceID }

// IsZero reports whether a is the zero Arn.
func (a Arn) IsZero() bool { return a == Arn{} }

// String returns the canonical string form. It always succeeds for a validly
// constructed Arn.
func (a Arn) String() string {
	return strings.Join([]string{Prefix, a.partition, a.service, a.category, a.resourceID.String()}, ":")
}

// MarshalText implements encoding.TextMarshaler.
func (a Arn) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It applies the same
// validation as Parse.
func (a *Arn) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
