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
	"math/bits"
)

// MaxValue returns the value with all valid bits set.
//
// If the underlying type is signed and its sign bit is valid, this value is
// negative.
func MaxValue[E Enum[E]]() E { return E(ValidBits[E]()) }

// MinValue returns the zero value.
func MinValue[E Enum[E]]() E { return 0 }

// BitsLength returns the number of bits needed to hold the valid bits.
func BitsLength[E Enum[E]]() int { return bits.Len64(ValidBits[E]()) }

// RangeLength returns the number of distinct valid values.
//
// When [MaxValue] converts to the largest uint64 this wraps to 0.
func RangeLength[E Enum[E]]() uint64 { return ToInteger[uint64](MaxValue[E]()) + 1 }

// ToInteger converts v to the integer type T.
func ToInteger[T Integer, E Enum[E]](v E) T { return T(v) }

// MakeSafely converts u to E, keeping only the valid bits.
func MakeSafely[E Enum[E], U Integer](u U) E { return E(u) & MaxValue[E]() }

// Make converts u to E. With [ClipLimit] it is the same as [MakeSafely],
// otherwise invalid bits are kept.
func Make[E Enum[E], U Integer](u U) E {
	if Clipped[E]() {
		return MakeSafely[E](u)
	}

	return E(u)
}

// MakeAt returns a value with only the bit at ndx set, counting from 1 at the lsb.
//
// It panics with [ErrBitIndex] unless 1 <= ndx <= the width of E.
func MakeAt[E Enum[E]](ndx int) E {
	if ndx < 1 || ndx > bitWidth[E]() {
		panic(fmt.Errorf("%w: %d for %T", ErrBitIndex, ndx, *new(E)))
	}

	return Make[E](uint64(1) << (ndx - 1))
}
