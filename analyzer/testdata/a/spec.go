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

package a

import "fillmore-labs.com/bitmaskenum/bitmask"

type Empty uint8

var emptySpec = bitmask.MustSpec[Empty](0) // want `spec has no valid bits \(bm:empty\)`

func (Empty) BitmaskSpec() *bitmask.Spec[Empty] { return emptySpec }

var _ = bitmask.MustBitNames[uint8]("") // want `name list "" has no valid bits \(bm:empty\)`

var _ = bitmask.MustBitNames[uint8]("a,")

var _ = bitmask.MustValueNames[uint8]("zero") // want `name list "zero" has no valid bits`

var _ = bitmask.MustValueNames[uint8](",,,,,,,,") // want `\(bm:empty\)`

var _ = bitmask.MustSpec[uint8](0x1ff) // want `9 valid bits exceed 8-bit uint8 \(bm:wide\)`

var _ = bitmask.MustSpec[uint16](0x1ff)

var _ = bitmask.MustBitNames[int8]("a,b,c,d,e,f,g,h,i") // want `9 valid bits exceed 8-bit int8`

var _ = bitmask.MustBitNames[uint8]("a,,,,,,,,") // want `9 valid bits exceed 8-bit uint8`

var _ = bitmask.MustBitNames[uint64]("x0,x1,x2,x3,x4,x5,x6,x7,x8,x9,x10,x11,x12,x13,x14,x15,x16,x17,x18,x19,x20,x21,x22,x23,x24,x25,x26,x27,x28,x29,x30,x31,x32,x33,x34,x35,x36,x37,x38,x39,x40,x41,x42,x43,x44,x45,x46,x47,x48,x49,x50,x51,x52,x53,x54,x55,x56,x57,x58,x59,x60,x61,x62,x63,x64") // want `65 bit names exceed 64 bits \(bm:wide\)`

var _, _ = bitmask.NewSpec[uint64](1 << 63)

func genericSpec[E bitmask.Integer](bits uint64) *bitmask.Spec[E] {
	if bits == 0 {
		return bitmask.MustSpec[E](0x1ff)
	}

	return bitmask.MustSpec[E](bits)
}
