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

package config

import "fillmore-labs.com/bitmaskenum/bitmask"

// Checks selects the literal checks of the analyzer.
type Checks uint8

const (
	// LeadingComma reports bit name lists starting with a comma.
	LeadingComma Checks = 1 << iota

	// ZeroIndex reports constant bit indexes below 1.
	ZeroIndex

	// EmptySpec reports specs without any valid bit.
	EmptySpec

	// Width reports specs and constant bit indexes exceeding their type.
	Width
)

var checksSpec = bitmask.MustBitNames[Checks]("width,empty-spec,zero-index,leading-comma",
	bitmask.WithClip(bitmask.ClipLimit))

// BitmaskSpec registers [Checks] as a bitmask enum.
func (Checks) BitmaskSpec() *bitmask.Spec[Checks] { return checksSpec }

func (c Checks) String() string { return bitmask.Format(c) }

// Enabled checks if all of the specified checks are enabled.
func (c Checks) Enabled(flag Checks) bool { return bitmask.HasAll(c, flag) }

// DefaultChecks returns all checks enabled.
func DefaultChecks() Checks { return bitmask.MaxValue[Checks]() }

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

var behaviorSpec = bitmask.MustBitNames[Behavior]("include-generated", bitmask.WithClip(bitmask.ClipLimit))

// BitmaskSpec registers [Behavior] as a bitmask enum.
func (Behavior) BitmaskSpec() *bitmask.Spec[Behavior] { return behaviorSpec }

func (b Behavior) String() string { return bitmask.Format(b) }

// Enabled checks if the specified option is enabled.
func (b Behavior) Enabled(flag Behavior) bool { return bitmask.HasAll(b, flag) }

// DefaultBehavior returns the default behavior, skipping generated files.
func DefaultBehavior() Behavior { return bitmask.MinValue[Behavior]() }
