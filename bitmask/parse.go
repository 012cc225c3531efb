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
	"strconv"
	"strings"
)

// Parse returns the value denoted by s, the inverse of [Format].
//
// s is a list of terms joined by "+", each either a name from the spec or a
// hex number. The result is built with [Make], so clipping applies.
func Parse[E Enum[E]](s string) (E, error) {
	spec := SpecOf[E]()

	var acc uint64

	for term := range strings.SplitSeq(s, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			return 0, fmt.Errorf("%w: empty term in %q", ErrSyntax, s)
		}

		if u, ok := lookupName(spec, term); ok {
			acc |= u

			continue
		}

		u, err := strconv.ParseUint(term, 16, 64)
		if err != nil {
			if isHexDigits(term) {
				return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
			}

			return 0, fmt.Errorf("%w %q", ErrUnknownName, term)
		}

		if u&^widthMask[E]() != 0 {
			return 0, fmt.Errorf("%w: %s exceeds %T", ErrSyntax, term, *new(E))
		}

		acc |= u
	}

	return Make[E](acc), nil
}

// lookupName returns the bits a name stands for.
func lookupName[E any](s *Spec[E], name string) (uint64, bool) {
	for i, n := range s.names {
		if n != name {
			continue
		}

		switch s.form {
		case BitNames:
			return uint64(1) << (len(s.names) - 1 - i), true

		case ValueNames:
			return uint64(i), true
		}
	}

	return 0, false
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}

	return true
}

// MarshalText returns the text form of v for use in [encoding.TextMarshaler]
// implementations.
func MarshalText[E Enum[E]](v E) ([]byte, error) {
	return Append(nil, v), nil
}

// UnmarshalText parses text into *p for use in [encoding.TextUnmarshaler]
// implementations.
func UnmarshalText[E Enum[E]](p *E, text []byte) error {
	v, err := Parse[E](string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}
