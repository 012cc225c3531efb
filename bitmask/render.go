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

import "strconv"

// separator joins rendered terms.
const separator = " + "

// Format returns the text form of v. See [Append].
func Format[E Enum[E]](v E) string {
	var buf [64]byte

	return string(Append(buf[:0], v))
}

// Append appends the text form of v to dst and returns the extended buffer.
//
// With bit names, every set and named bit is rendered by name, most
// significant first. With value names, the valid part is looked up directly,
// falling back to a greedy decomposition into named values. Remaining bits
// are rendered in hex, as is a value without any matching name. Terms are
// joined by " + ". The result is never empty.
func Append[E Enum[E]](dst []byte, v E) []byte {
	s := SpecOf[E]()

	switch s.form {
	case BitNames:
		return appendBits(dst, v, s.names)

	case ValueNames:
		return appendValues(dst, v, s.validBits, s.names)

	default:
		return appendHex(dst, v)
	}
}

func appendBits[E Enum[E]](dst []byte, v E, names []string) []byte {
	first := true

	for ndx := len(names); ndx > 0; ndx-- {
		mask := E(1) << (ndx - 1)
		name := names[len(names)-ndx]

		if Has(v, mask) && name != "" {
			dst = appendSeparator(dst, &first)
			dst = append(dst, name...)
			v &^= mask
		}
	}

	if v != 0 || first {
		dst = appendSeparator(dst, &first)
		dst = appendHex(dst, v)
	}

	return dst
}

func appendValues[E Enum[E]](dst []byte, v E, validBits uint64, names []string) []byte {
	first := true

	// Direct lookup of the valid part first.
	part := uint64(v) & validBits
	if part < uint64(len(names)) && names[part] != "" {
		dst = appendSeparator(dst, &first)
		dst = append(dst, names[part]...)
		v &^= E(validBits)
	}

	// Otherwise scan downward for named values contained in v.
	if first {
		start := int(min(part, uint64(len(names)-1)))
		for ndx := start; ndx >= 0; ndx-- {
			mask := E(ndx)

			if HasAll(v, mask) && names[ndx] != "" {
				dst = appendSeparator(dst, &first)
				dst = append(dst, names[ndx]...)
				v &^= mask

				if uint64(v)&validBits == 0 {
					break
				}
			}
		}
	}

	if v != 0 || first {
		dst = appendSeparator(dst, &first)
		dst = appendHex(dst, v)
	}

	return dst
}

// appendHex renders v in hex, truncated to the width of E.
func appendHex[E Enum[E]](dst []byte, v E) []byte {
	return strconv.AppendUint(dst, uint64(v)&widthMask[E](), 16)
}

func appendSeparator(dst []byte, first *bool) []byte {
	if *first {
		*first = false

		return dst
	}

	return append(dst, separator...)
}
