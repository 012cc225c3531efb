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

// Bits returns the raw bits of v. Negative values of signed types are sign-extended.
func Bits[E Enum[E]](v E) uint64 { return uint64(v) }

// Or returns the bitwise or of l and r.
func Or[E Enum[E]](l, r E) E { return l | r }

// And returns the bitwise and of l and r.
func And[E Enum[E]](l, r E) E { return l & r }

// Xor returns the bitwise exclusive or of l and r.
func Xor[E Enum[E]](l, r E) E { return l ^ r }

// Not returns the complement of v.
//
// With [ClipNone] this flips all bits and may set invalid ones, whereas [Flip]
// does not. With [ClipLimit] it is the same as [Flip].
func Not[E Enum[E]](v E) E {
	if Clipped[E]() {
		return Flip(v)
	}

	return ^v
}

// Add returns the union of l and r. It is the same as [Or].
func Add[E Enum[E]](l, r E) E { return Or(l, r) }

// Sub returns l with the bits of r cleared, using [Not] for the complement of r.
func Sub[E Enum[E]](l, r E) E { return And(l, Not(r)) }

// OrAssign sets *l to l | r and returns l.
func OrAssign[E Enum[E]](l *E, r E) *E {
	*l = Or(*l, r)

	return l
}

// AndAssign sets *l to l & r and returns l.
func AndAssign[E Enum[E]](l *E, r E) *E {
	*l = And(*l, r)

	return l
}

// XorAssign sets *l to l ^ r and returns l.
func XorAssign[E Enum[E]](l *E, r E) *E {
	*l = Xor(*l, r)

	return l
}

// AddAssign sets *l to [Add](l, r) and returns l.
func AddAssign[E Enum[E]](l *E, r E) *E {
	*l = Add(*l, r)

	return l
}

// SubAssign sets *l to [Sub](l, r) and returns l.
func SubAssign[E Enum[E]](l *E, r E) *E {
	*l = Sub(*l, r)

	return l
}
