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

// Package analyzer implements the bitmaskcheck static analysis pass.
//
// # Overview
//
// The bitmask package rejects unregistered types at compile time through its
// type constraint. Malformed constant arguments only fail when the program
// runs: a spec built at package initialization panics, a bad bit index panics
// when used. bitmaskcheck reports these at vet time.
//
// # Checks
//
//   - leading-comma: a bit name list starting with a comma. The names are
//     listed from the most significant bit down, so a leading comma is almost
//     always meant as an unnamed value 0. A suggested fix removes the commas.
//   - zero-index: a constant bit index below 1 for MakeAt, HasAt, SetAt and
//     the other index functions. Bits are counted from 1.
//   - empty-spec: a spec without any valid bit.
//   - width: a spec or bit index that does not fit the enum type.
//
// # Example
//
//	type Color uint8
//
//	var colorSpec = bitmask.MustBitNames[Color](",red,green,blue") // leading comma
//
//	func (Color) BitmaskSpec() *bitmask.Spec[Color] { return colorSpec }
//
//	_ = bitmask.MakeAt[Color](0) // bits are counted from 1
//
// Diagnostics end with a tag like (bm:lead) naming the check. A
// //nolint:bitmaskcheck comment on the line or before the package clause
// suppresses them.
package analyzer
