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

// Package resid implements the typed unique identifier segment of an ARN.
//
// An identifier pairs a short type tag with a 128-bit random payload and has
// the string form "<tag>_<value>" where the value is the 26-character
// Crockford base32 encoding of the payload. The encoding is canonical: only
// the exact byte sequence produced by String is accepted by Parse.
package resid

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrInvalid reports an identifier string that does not match the
	// tag/value format.
	ErrInvalid = errors.New("invalid resource identifier")
	// ErrEntropy reports that the underlying random source failed. Generation
	// never degrades to a less-random value.
	ErrEntropy = errors.New("random source unavailable")
)

// Crockford base32 (no I, L, O, U). 16 payload bytes encode to exactly 26
// characters with no padding.
var encoding = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

const encodedLen = 26

// maxTagLen bounds the tag so the identifier segment stays short and
// scannable.
const maxTagLen = 8

// Tag names the kind of resource an identifier refers to. Tags are used as
// prefixes in the identifier's string form.
type Tag string

// Well-known tags. The set is open: Parse accepts any syntactically valid
// tag, registered or not.
const (
	User    Tag = "usr"
	Group   Tag = "grp"
	Role    Tag = "role"
	Session Tag = "sess"
	Key     Tag = "key"
)

func (t Tag) validate() error {
	if len(t) == 0 || len(t) > maxTagLen {
		return errors.Wrapf(ErrInvalid, "tag %q must be 1 to %d characters", t, maxTagLen)
	}
	for i := 0; i < len(t); i++ {
		c := t[i]
		if i == 0 && !(c >= 'a' && c <= 'z') {
			return errors.Wrapf(ErrInvalid, "tag %q must begin with a lowercase letter", t)
		}
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return errors.Wrapf(ErrInvalid, "tag %q contains illegal character %q", t, c)
		}
	}
	return nil
}

// ID is a typed unique identifier. The zero value is not a valid identifier;
// values are obtained from New or Parse and are immutable thereafter.
type ID struct {
	tag Tag
	val uuid.UUID
}

// newRandom is the single source of fresh identifier payloads. All
// generation funnels through it so collision-avoidance is centralized and
// tests can substitute a deterministic source.
var newRandom = uuid.NewRandom

// New returns a fresh identifier for the given tag with a random
// (version 4 UUID) payload.
func New(tag Tag) (ID, error) {
	if err := tag.validate(); err != nil {
		return ID{}, err
	}
	u, err := newRandom()
	if err != nil {
		return ID{}, errors.Wrapf(ErrEntropy, "generating payload: %v", err)
	}
	return ID{tag: tag, val: u}, nil
}

// Parse decodes the string form of an identifier.
func Parse(s string) (ID, error) {
	tag, val, found := strings.Cut(s, "_")
	if !found {
		return ID{}, errors.Wrapf(ErrInvalid, "%q missing tag separator", s)
	}
	if err := Tag(tag).validate(); err != nil {
		return ID{}, err
	}
	if len(val) != encodedLen {
		return ID{}, errors.Wrapf(ErrInvalid, "value %q must be %d characters, got %d", val, encodedLen, len(val))
	}
	raw, err := encoding.DecodeString(val)
	if err != nil {
		return ID{}, errors.Wrapf(ErrInvalid, "value %q: %v", val, err)
	}
	// Reject non-canonical spellings (e.g. nonzero trailing bits in the
	// final character) so Parse(id.String()) is the only accepted form.
	if encoding.EncodeToString(raw) != val {
		return ID{}, errors.Wrapf(ErrInvalid, "value %q is not canonical", val)
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return ID{}, errors.Wrapf(ErrInvalid, "value %q: %v", val, err)
	}
	return ID{tag: Tag(tag), val: u}, nil
}

// MustParse is Parse for identifiers known to be valid; it panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Tag returns the identifier's type tag.
func (id ID) Tag() Tag { return id.tag }

// UUID returns the identifier's 128-bit payload.
func (id ID) UUID() uuid.UUID { return id.val }

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool { return id == ID{} }

// String returns the canonical "<tag>_<value>" form.
func (id ID) String() string {
	return string(id.tag) + "_" + encoding.EncodeToString(id.val[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
