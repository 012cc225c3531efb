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

// Has reports whether v has any of the bits in m set.
func Has[E Enum[E]](v, m E) bool { return And(v, m) != 0 }

// HasAll reports whether v has all the bits in m set.
func HasAll[E Enum[E]](v, m E) bool { return And(v, m) == m }

// Missing reports whether v is missing some of the bits set in m.
func Missing[E Enum[E]](v, m E) bool { return !HasAll(v, m) }

// MissingAll reports whether v is missing all of the bits set in m.
func MissingAll[E Enum[E]](v, m E) bool { return !Has(v, m) }

// Set returns v with the bits in m set.
func Set[E Enum[E]](v, m E) E { return Add(v, m) }

// SetIf returns v with the bits in m set only if pred.
func SetIf[E Enum[E]](v, m E, pred bool) E {
	if !pred {
		return v
	}

	return Add(v, m)
}

// Clear returns v with the bits in m cleared.
func Clear[E Enum[E]](v, m E) E { return Sub(v, m) }

// ClearIf returns v with the bits in m cleared only if pred.
func ClearIf[E Enum[E]](v, m E, pred bool) E {
	if !pred {
		return v
	}

	return Sub(v, m)
}

// SetTo returns v with the bits in m set to value.
func SetTo[E Enum[E]](v, m E, value bool) E {
	if value {
		return Add(v, m)
	}

	return Sub(v, m)
}

// Flip returns v with only the valid bits flipped.
func Flip[E Enum[E]](v E) E { return Xor(v, MaxValue[E]()) }

// The index functions below count bits from 1 at the lsb and panic like [MakeAt].

// HasAt reports whether the bit at ndx is set in v.
func HasAt[E Enum[E]](v E, ndx int) bool { return Has(v, MakeAt[E](ndx)) }

// SetAt returns v with the bit at ndx set.
func SetAt[E Enum[E]](v E, ndx int) E { return Add(v, MakeAt[E](ndx)) }

// SetAtIf returns v with the bit at ndx set only if pred.
func SetAtIf[E Enum[E]](v E, ndx int, pred bool) E {
	if !pred {
		return v
	}

	return SetAt(v, ndx)
}

// ClearAt returns v with the bit at ndx cleared.
func ClearAt[E Enum[E]](v E, ndx int) E { return Sub(v, MakeAt[E](ndx)) }

// ClearAtIf returns v with the bit at ndx cleared only if pred.
func ClearAtIf[E Enum[E]](v E, ndx int, pred bool) E {
	if !pred {
		return v
	}

	return ClearAt(v, ndx)
}

// SetAtTo returns v with the bit at ndx set to value.
func SetAtTo[E Enum[E]](v E, ndx int, value bool) E {
	if value {
		return SetAt(v, ndx)
	}

	return ClearAt(v, ndx)
}
