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

import "errors"

var (
	// ErrLeadingComma is returned for a bit-name list starting with a comma.
	ErrLeadingComma = errors.New("bitmask: bit name list starts with a comma")

	// ErrNoValidBits is returned for a spec without any valid bit.
	ErrNoValidBits = errors.New("bitmask: no valid bits")

	// ErrTooWide is returned when the valid bits do not fit the enum type.
	ErrTooWide = errors.New("bitmask: valid bits exceed type width")

	// ErrBitIndex is the panic value for a bit index outside 1 to the type width.
	ErrBitIndex = errors.New("bitmask: bit index out of range")

	// ErrUnregistered is the panic value when BitmaskSpec returns nil.
	ErrUnregistered = errors.New("bitmask: type has no spec")

	// ErrUnknownName is returned when parsing a term that is neither a name nor a number.
	ErrUnknownName = errors.New("bitmask: unknown name")

	// ErrInvalidName is returned for a name that would not parse back as itself.
	ErrInvalidName = errors.New("bitmask: invalid name")

	// ErrSyntax is returned for malformed text.
	ErrSyntax = errors.New("bitmask: invalid syntax")
)
