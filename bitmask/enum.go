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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types a bitmask enum can be based on.
type Integer interface {
	constraints.Integer
}

// Enum is satisfied by integer types registered as bitmask enums.
//
// BitmaskSpec is called on the zero value and must return the same non-nil
// spec every time, usually a package-level variable.
type Enum[E any] interface {
	Integer
	BitmaskSpec() *Spec[E]
}

// SpecOf returns the spec registered for E.
func SpecOf[E Enum[E]]() *Spec[E] {
	var zero E

	s := zero.BitmaskSpec()
	if s == nil {
		panic(fmt.Errorf("%w: %T", ErrUnregistered, zero))
	}

	return s
}

// ValidBits returns the mask of valid bits of E.
func ValidBits[E Enum[E]]() uint64 { return SpecOf[E]().validBits }

// Clipped reports whether E uses [ClipLimit].
func Clipped[E Enum[E]]() bool { return SpecOf[E]().clip == ClipLimit }

// bitWidth returns the number of bits in E.
func bitWidth[E Integer]() int {
	var zero E

	return int(unsafe.Sizeof(zero)) * 8
}

// widthMask has all bits of E set.
func widthMask[E Integer]() uint64 {
	if w := bitWidth[E](); w < 64 {
		return 1<<w - 1
	}

	return ^uint64(0)
}
