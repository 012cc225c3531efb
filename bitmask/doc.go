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

// Package bitmask turns integer-backed named types into bit sets.
//
// # Registration
//
// A type becomes a bitmask enum by declaring a BitmaskSpec method that returns
// its [Spec]. Every function in this package is constrained on [Enum], so using
// one with a type that has no spec fails to compile.
//
//	type RGB uint8
//
//	const (
//	    Blue RGB = 1 << iota
//	    Green
//	    Red
//	)
//
//	var rgbSpec = bitmask.MustBitNames[RGB]("red,green,blue")
//
//	func (RGB) BitmaskSpec() *bitmask.Spec[RGB] { return rgbSpec }
//	func (v RGB) String() string               { return bitmask.Format(v) }
//
// Bits must be contiguous starting at the lsb, and any combination of valid
// bits is a valid value. Prefer unsigned underlying types: with a signed type
// whose sign bit is valid, [MaxValue] is negative.
//
// # Names
//
// A spec carries no names, one name per bit ([MustBitNames], most significant
// bit first) or one name per value ([MustValueNames], starting at 0). Empty
// entries leave a bit or value unnamed. A bit-name list must not start with a
// comma; the bitmaskcheck analyzer reports this at vet time and the builders
// reject it at initialization.
//
// # Clipping
//
// With [ClipNone] (the default) operations pass invalid bits through. The only
// operation that creates invalid bits from valid inputs is [Not]; [Flip] is
// the safe alternative. With [ClipLimit], [Not] behaves like [Flip] and [Make]
// like [MakeSafely].
//
// # Bit indexes
//
// [MakeAt], [SetAt], [ClearAt] and friends count bits from 1 at the lsb. An
// index of 0 is a programming error and panics with [ErrBitIndex].
package bitmask
