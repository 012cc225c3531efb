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

import (
	"fmt"
	"strings"
)

// Clip is the clipping policy of a bitmask enum.
type Clip uint8

//go:generate go tool stringer -type Clip -linecomment
const (
	// ClipNone lets operations produce and accept invalid bits.
	ClipNone Clip = iota // none

	// ClipLimit masks every construction and complement to the valid bits.
	ClipLimit // limit
)

// MarshalText implements [encoding.TextMarshaler].
func (c Clip) MarshalText() ([]byte, error) {
	switch c {
	case ClipNone, ClipLimit:
		return []byte(c.String()), nil

	default:
		return nil, fmt.Errorf("unknown clip policy %d", c)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Clip) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "none", "off", "false":
		*c = ClipNone

	case "limit", "on", "true":
		*c = ClipLimit

	default:
		return fmt.Errorf("unknown clip policy %q", string(text))
	}

	return nil
}
