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

type Flags uint16

var flagsSpec = bitmask.MustSpec[Flags](0xfff)

func (Flags) BitmaskSpec() *bitmask.Spec[Flags] { return flagsSpec }

func indexes(f Flags, n int) {
	_ = bitmask.MakeAt[Flags](0) // want `bit index 0 is less than 1, bits are counted from 1 \(bm:zero\)`
	_ = bitmask.MakeAt[Flags](1)
	_ = bitmask.MakeAt[Flags](16)
	_ = bitmask.MakeAt[Flags](17) // want `bit index 17 exceeds 16-bit Flags \(bm:wide\)`
	_ = bitmask.MakeAt[Flags](n)

	_ = bitmask.HasAt(f, 0) // want `\(bm:zero\)`

	_ = bitmask.SetAt(f, -1) // want `bit index -1 is less than 1`

	_ = bitmask.SetAtIf(f, 0, true) // want `\(bm:zero\)`

	_ = bitmask.ClearAt(f, n)

	_ = bitmask.ClearAtIf(f, 0, false) // want `\(bm:zero\)`

	_ = bitmask.SetAtTo(f, 32, true) // want `exceeds 16-bit Flags \(bm:wide\)`

	const first = 1
	_ = bitmask.SetAt(f, first-1) // want `bit index 0 is less than 1`

	_ = bitmask.MakeAt[Flags](0) //nolint:bitmaskcheck
}

func generic[E bitmask.Enum[E]](v E) E {
	return bitmask.SetAt(v, 64)
}
