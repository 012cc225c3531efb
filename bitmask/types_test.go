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

package bitmask_test

import . "fillmore-labs.com/bitmaskenum/bitmask"

// Color has three named bits.
type Color uint8

const (
	Blue Color = 1 << iota
	Green
	Red
)

var colorSpec = MustBitNames[Color]("red,green,blue")

func (Color) BitmaskSpec() *Spec[Color] { return colorSpec }

func (c Color) String() string { return Format(c) }

// LimitedColor is Color with clipping.
type LimitedColor uint8

var limitedColorSpec = MustBitNames[LimitedColor]("red,green,blue", WithClip(ClipLimit))

func (LimitedColor) BitmaskSpec() *Spec[LimitedColor] { return limitedColorSpec }

// Day is named by value, 0 is unnamed.
type Day uint8

var daySpec = MustValueNames[Day](",mon,tue,wed")

func (Day) BitmaskSpec() *Spec[Day] { return daySpec }

// Mode has a name for 0 and skips value 3.
type Mode uint16

var modeSpec = MustValueNames[Mode]("off,read,write,,exec,,,all")

func (Mode) BitmaskSpec() *Spec[Mode] { return modeSpec }

// Sparse has an unnamed bit in the middle.
type Sparse uint32

var sparseSpec = MustBitNames[Sparse]("high,,low")

func (Sparse) BitmaskSpec() *Spec[Sparse] { return sparseSpec }

// Raw has three valid bits and no names.
type Raw uint8

var rawSpec = MustSpec[Raw](7)

func (Raw) BitmaskSpec() *Spec[Raw] { return rawSpec }

// LimitedRaw has three valid bits, no names and clipping.
type LimitedRaw uint8

var limitedRawSpec = MustSpec[LimitedRaw](7, WithClip(ClipLimit))

func (LimitedRaw) BitmaskSpec() *Spec[LimitedRaw] { return limitedRawSpec }

// Signed uses all bits of a signed type.
type Signed int8

var signedSpec = MustSpec[Signed](0xff)

func (Signed) BitmaskSpec() *Spec[Signed] { return signedSpec }

// Full uses all 64 bits.
type Full uint64

var fullSpec = MustSpec[Full](^uint64(0))

func (Full) BitmaskSpec() *Spec[Full] { return fullSpec }

// Broken returns no spec.
type Broken uint8

func (Broken) BitmaskSpec() *Spec[Broken] { return nil }
