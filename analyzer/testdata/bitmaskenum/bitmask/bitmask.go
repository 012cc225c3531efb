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

// Package bitmask mirrors the signatures checked by bitmaskcheck.
package bitmask

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Spec[E any] struct{ validBits uint64 }

type Enum[E any] interface {
	Integer
	BitmaskSpec() *Spec[E]
}

type Option interface{ apply() }

func NewSpec[E Integer](validBits uint64, opts ...Option) (*Spec[E], error) {
	return &Spec[E]{validBits}, nil
}

func MustSpec[E Integer](validBits uint64, opts ...Option) *Spec[E] { return &Spec[E]{validBits} }

func ParseBitNames[E Integer](list string, opts ...Option) (*Spec[E], error) { return &Spec[E]{}, nil }

func MustBitNames[E Integer](list string, opts ...Option) *Spec[E] { return &Spec[E]{} }

func ParseValueNames[E Integer](list string, opts ...Option) (*Spec[E], error) { return &Spec[E]{}, nil }

func MustValueNames[E Integer](list string, opts ...Option) *Spec[E] { return &Spec[E]{} }

func MakeAt[E Enum[E]](ndx int) E { return E(1) << (ndx - 1) }

func HasAt[E Enum[E]](v E, ndx int) bool { return v&MakeAt[E](ndx) != 0 }

func SetAt[E Enum[E]](v E, ndx int) E { return v | MakeAt[E](ndx) }

func SetAtIf[E Enum[E]](v E, ndx int, pred bool) E { return v }

func ClearAt[E Enum[E]](v E, ndx int) E { return v &^ MakeAt[E](ndx) }

func ClearAtIf[E Enum[E]](v E, ndx int, pred bool) E { return v }

func SetAtTo[E Enum[E]](v E, ndx int, value bool) E { return v }

func (s *Spec[E]) ValidBits() uint64 { return s.validBits }
