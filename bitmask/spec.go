// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package bitmask

import (
	"fmt"
	"log/slog"
	"math/bits"
	"slices"
	"strings"
)

// Spec describes a bitmask enum: its valid bits, clipping policy and names.
// A Spec is immutable once built.
type Spec[E any] struct {
	validBits uint64
	clip      Clip
	form      NameForm
	names     []string
}

// ValidBits returns the mask of valid bits.
func (s *Spec[E]) ValidBits() uint64 { return s.validBits }

// Clip returns the clipping policy.
func (s *Spec[E]) Clip() Clip { return s.clip }

// Form returns how the name table is interpreted.
func (s *Spec[E]) Form() NameForm { return s.form }

// Names returns a copy of the name table.
func (s *Spec[E]) Names() []string { return slices.Clone(s.names) }

// LogValue implements [slog.LogValuer].
func (s *Spec[E]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", fmt.Sprintf("%T", *new(E))),
		slog.String("valid", fmt.Sprintf("%#x", s.validBits)),
		slog.String("clip", s.clip.String()),
		slog.String("form", s.form.String()),
		slog.String("names", strings.Join(s.names, ",")),
	)
}

// NewSpec returns a spec without names for the given valid bits.
// Values of such a type are rendered in hex.
func NewSpec[E Integer](validBits uint64, opts ...Option) (*Spec[E], error) {
	return newSpec[E](validBits, NoNames, nil, opts)
}

// MustSpec is like [NewSpec] but panics on error.
// It simplifies safe initialization of package-level variables.
func MustSpec[E Integer](validBits uint64, opts ...Option) *Spec[E] {
	return must(NewSpec[E](validBits, opts...))
}

// ParseBitNames returns a spec from a comma-delimited list of bit names,
// starting with the most significant bit. Empty names leave a bit invalid;
// the list must not start with a comma. Names must not contain "+" or
// consist of hex digits only.
func ParseBitNames[E Integer](list string, opts ...Option) (*Spec[E], error) {
	if strings.HasPrefix(list, ",") {
		return nil, fmt.Errorf("%w: %q", ErrLeadingComma, list)
	}

	names := SplitNames(list)
	if len(names) > 64 {
		return nil, fmt.Errorf("%w: %d bit names", ErrTooWide, len(names))
	}

	if err := checkNames(names); err != nil {
		return nil, err
	}

	return newSpec[E](ValidBitsFromBitNames(names), BitNames, names, opts)
}

// MustBitNames is like [ParseBitNames] but panics on error.
func MustBitNames[E Integer](list string, opts ...Option) *Spec[E] {
	return must(ParseBitNames[E](list, opts...))
}

// ParseValueNames returns a spec from a comma-delimited list of value names,
// starting at value 0. The valid bits are the union of all named values.
func ParseValueNames[E Integer](list string, opts ...Option) (*Spec[E], error) {
	names := SplitNames(list)
	if err := checkNames(names); err != nil {
		return nil, err
	}

	return newSpec[E](ValidBitsFromValueNames(names), ValueNames, names, opts)
}

// MustValueNames is like [ParseValueNames] but panics on error.
func MustValueNames[E Integer](list string, opts ...Option) *Spec[E] {
	return must(ParseValueNames[E](list, opts...))
}

func newSpec[E Integer](validBits uint64, form NameForm, names []string, opts Options) (*Spec[E], error) {
	if validBits == 0 {
		return nil, fmt.Errorf("%w for %T", ErrNoValidBits, *new(E))
	}

	if n, width := bits.Len64(validBits), bitWidth[E](); n > width {
		return nil, fmt.Errorf("%w: %d bits for %d-bit %T", ErrTooWide, n, width, *new(E))
	}

	var o settings
	opts.apply(&o)

	return &Spec[E]{
		validBits: validBits,
		clip:      o.clip,
		form:      form,
		names:     names,
	}, nil
}

func must[E any](s *Spec[E], err error) *Spec[E] {
	if err != nil {
		panic(err)
	}

	return s
}
