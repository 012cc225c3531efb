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

//nolint:bitmaskcheck
package quiet

import "fillmore-labs.com/bitmaskenum/bitmask"

type Color uint8

var colorSpec = bitmask.MustBitNames[Color](",red,green,blue")

func (Color) BitmaskSpec() *bitmask.Spec[Color] { return colorSpec }

func first() Color { return bitmask.MakeAt[Color](0) }
