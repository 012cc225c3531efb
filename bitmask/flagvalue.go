// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

import "strconv"

// Value is a [flag.Value] holding a whole bitmask, in the syntax of [Parse].
type Value[E Enum[E]] struct {
	p *E
}

// NewValue returns a [Value] storing into p.
func NewValue[E Enum[E]](p *E) Value[E] { return Value[E]{p: p} }

// Set implements [flag.Value].
func (f Value[E]) Set(s string) error {
	return UnmarshalText(f.p, []byte(s))
}

// String implements [flag.Value].
func (f Value[E]) String() string {
	if f.p == nil {
		return Format(MinValue[E]())
	}

	return Format(*f.p)
}

// Get implements [flag.Getter].
func (f Value[E]) Get() any {
	if f.p == nil {
		return MinValue[E]()
	}

	return *f.p
}

// BoolValue is a boolean [flag.Value] setting or clearing a mask in a bitmask.
type BoolValue[E Enum[E]] struct {
	p    *E
	mask E
}

// NewBoolValue returns a [BoolValue] toggling mask in *p.
func NewBoolValue[E Enum[E]](p *E, mask E) BoolValue[E] {
	return BoolValue[E]{p: p, mask: mask}
}

// Set implements [flag.Value].
func (f BoolValue[E]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	*f.p = SetTo(*f.p, f.mask, b)

	return nil
}

// String implements [flag.Value].
func (f BoolValue[E]) String() string {
	if f.p == nil {
		return "false"
	}

	return strconv.FormatBool(HasAll(*f.p, f.mask))
}

// Get implements [flag.Getter].
func (f BoolValue[E]) Get() any {
	if f.p == nil {
		return false
	}

	return HasAll(*f.p, f.mask)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f BoolValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil

	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
