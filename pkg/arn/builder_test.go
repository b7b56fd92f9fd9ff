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
	"errors"
	"testing"

	"github.com/akton/arn/pkg/resid"
)

func TestBuilderGeneratesID(t *testing.T) {
	a, err := NewBuilder().
		Partition("prod").
		Service("billing").
		Category("acct1").
		Tag(resid.User).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.ResourceID().Tag() != resid.User {
		t.Errorf("built ARN tag = %q, want %q", a.ResourceID().Tag(), resid.User)
	}
	back, err := Parse(a.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", a.String(), err)
	}
	if back != a {
		t.Errorf("built ARN does not round-trip: %v vs %v", back, a)
	}
}

func TestBuilderExplicitID(t *testing.T) {
	id := resid.MustParse(zeroID)
	a, err := NewBuilder().
		Partition("prod").
		Service("billing").
		Category("acct1").
		ID(id).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	want, err := WithID("prod", "billing", "acct1", zeroID)
	if err != nil {
		t.Fatal(err)
	}
	if a != want {
		t.Errorf("Builder with explicit ID = %v, want %v", a, want)
	}
}

func TestBuilderOmittedCategory(t *testing.T) {
	a, err := NewBuilder().Partition("p").Service("s").Tag(resid.Session).Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.Category() != "" {
		t.Errorf("unset category = %q, want empty", a.Category())
	}
}

func TestBuilderErrors(t *testing.T) {
	if _, err := NewBuilder().Partition("pr#d").Service("s").Tag(resid.User).Build(); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("bad partition error = %v, want ErrInvalidSegment kind", err)
	}
	if _, err := NewBuilder().Partition("p").Service("s").Build(); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("missing tag error = %v, want ErrInvalidIdentifier kind", err)
	}
	if _, err := NewBuilder().Partition("p").Service("s").ID(resid.ID{}).Build(); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("zero ID error = %v, want ErrInvalidIdentifier kind", err)
	}
}
