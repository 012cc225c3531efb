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

// NameForm tells how a spec's name table is interpreted.
type NameForm uint8

const (
	// NoNames renders values in hex only.
	NoNames NameForm = iota

	// BitNames holds one name per bit, most significant bit first.
	BitNames

	// ValueNames holds one name per value, starting at 0.
	ValueNames
)

// String returns the name of the form.
func (f NameForm) String() string {
	switch f {
	case NoNames:
		return "none"

	case BitNames:
		return "bits"

	case ValueNames:
		return "values"

	default:
		return "unknown"
	}
}

// SplitNames splits a comma-delimited name list, keeping empty entries.
// An empty list has no names.
func SplitNames(list string) []string {
	if list == "" {
		return nil
	}

	return strings.Split(list, ",")
}

// checkNames rejects names [Parse] cannot read back: names containing "+",
// surrounding white space or only hex digits.
func checkNames(names []string) error {
	for _, name := range names {
		switch {
		case name == "":

		case strings.Contains(name, "+"), strings.TrimSpace(name) != name:
			return fmt.Errorf("%w %q", ErrInvalidName, name)

		case isHexDigits(name):
			return fmt.Errorf("%w %q: reads as a hex number", ErrInvalidName, name)
		}
	}

	return nil
}

// ValidBitsFromBitNames returns the bits named in a bit-name table. The first
// name belongs to the most significant bit, the last one to the lsb.
//
// Any non-empty name makes its bit valid, even if it will never be rendered.
func ValidBitsFromBitNames(names []string) uint64 {
	var valid uint64

	pow2 := uint64(1)
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] != "" {
			valid |= pow2
		}

		pow2 <<= 1
	}

	return valid
}

// ValidBitsFromValueNames returns the union of all values named in a
// value-name table, where the name at index i belongs to value i.
func ValidBitsFromValueNames(names []string) uint64 {
	var valid uint64

	for i := 1; i < len(names); i++ {
		if names[i] != "" {
			valid |= uint64(i)
		}
	}

	return valid
}
