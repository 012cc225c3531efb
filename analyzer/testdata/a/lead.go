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

type Color uint8

var colorSpec = bitmask.MustBitNames[Color](",red,green,blue") // want `bit name list ",red,green,blue" starts with a comma \(bm:lead\)`

func (Color) BitmaskSpec() *bitmask.Spec[Color] { return colorSpec }

type Day uint8

var daySpec, _ = bitmask.ParseBitNames[Day](`,,mon,tue`) // want `bit name list ",,mon,tue" starts with a comma`

func (Day) BitmaskSpec() *bitmask.Spec[Day] { return daySpec }

const weekend = ",sat,sun"

var _ = bitmask.MustBitNames[uint8](weekend) // want `starts with a comma \(bm:lead\)`

var _ = bitmask.MustBitNames[uint8](",a") //nolint:bitmaskcheck

// Value names start at 0, so a leading comma leaves 0 unnamed.
var _ = bitmask.MustValueNames[uint8](",mon,tue")
