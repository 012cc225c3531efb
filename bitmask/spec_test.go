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

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/bitmaskenum/bitmask"
)

func TestParseBitNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  string
		valid uint64
		err   error
	}{
		{"three", "red,green,blue", 7, nil},
		{"gap", "high,,low", 5, nil},
		{"trailing", "x,y,", 6, nil},
		{"single", "only", 1, nil},
		{"leading comma", ",red,green", 0, ErrLeadingComma},
		{"empty", "", 0, ErrNoValidBits},
		{"nine for uint8", "g,h,i,j,k,l,m,n,o", 0, ErrTooWide},
		{"hex name", "a,,b", 0, ErrInvalidName},
		{"digits", "high,10", 0, ErrInvalidName},
		{"plus", "read+write,exec", 0, ErrInvalidName},
		{"space", "high, low", 0, ErrInvalidName},
		{"too many", strings.Repeat("x,", 64) + "x", 0, ErrTooWide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseBitNames[uint8](tt.list)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseBitNames(%q) error = %v, want %v", tt.list, err, tt.err)
			}

			if err != nil {
				return
			}

			if got := s.ValidBits(); got != tt.valid {
				t.Errorf("ValidBits() = %#x, want %#x", got, tt.valid)
			}

			if got := s.Form(); got != BitNames {
				t.Errorf("Form() = %v, want %v", got, BitNames)
			}
		})
	}
}

func TestParseValueNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  string
		valid uint64
		err   error
	}{
		{"days", ",mon,tue,wed", 3, nil},
		{"named zero", "off,read,write,,exec,,,all", 7, nil},
		{"only zero", "none", 0, ErrNoValidBits},
		{"hex name", ",cafe,tea", 0, ErrInvalidName},
		{"empty", "", 0, ErrNoValidBits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseValueNames[uint8](tt.list)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseValueNames(%q) error = %v, want %v", tt.list, err, tt.err)
			}

			if err != nil {
				return
			}

			if got := s.ValidBits(); got != tt.valid {
				t.Errorf("ValidBits() = %#x, want %#x", got, tt.valid)
			}

			if got := s.Form(); got != ValueNames {
				t.Errorf("Form() = %v, want %v", got, ValueNames)
			}
		})
	}
}

func TestNewSpec(t *testing.T) {
	t.Parallel()

	if _, err := NewSpec[uint8](0); !errors.Is(err, ErrNoValidBits) {
		t.Errorf("NewSpec(0) error = %v, want %v", err, ErrNoValidBits)
	}

	if _, err := NewSpec[uint8](0x1ff); !errors.Is(err, ErrTooWide) {
		t.Errorf("NewSpec[uint8](0x1ff) error = %v, want %v", err, ErrTooWide)
	}

	if _, err := NewSpec[int8](0xff); err != nil {
		t.Errorf("NewSpec[int8](0xff) error = %v, want nil", err)
	}

	s, err := NewSpec[uint16](0x3ff, WithClip(ClipLimit))
	if err != nil {
		t.Fatalf("NewSpec[uint16](0x3ff) error = %v", err)
	}

	if got := s.Clip(); got != ClipLimit {
		t.Errorf("Clip() = %v, want %v", got, ClipLimit)
	}

	if got := s.Form(); got != NoNames {
		t.Errorf("Form() = %v, want %v", got, NoNames)
	}

	if got := s.Names(); len(got) != 0 {
		t.Errorf("Names() = %q, want none", got)
	}
}

func TestMustPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()

		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLeadingComma) {
			t.Errorf("MustBitNames panic = %v, want %v", r, ErrLeadingComma)
		}
	}()

	_ = MustBitNames[uint8](",a")
}

func TestNamesCopy(t *testing.T) {
	t.Parallel()

	names := SpecOf[Color]().Names()
	names[0] = "changed"

	if got, want := SpecOf[Color]().Names(), []string{"red", "green", "blue"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %q after modification, want %q", got, want)
	}
}

func TestSpecOfNil(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()

		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnregistered) {
			t.Errorf("SpecOf panic = %v, want %v", r, ErrUnregistered)
		}
	}()

	_ = SpecOf[Broken]()
}

func TestSpecLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))

	logger.Info("registered", "spec", SpecOf[LimitedColor](), Options{WithClip(ClipLimit), nil}.LogAttr())

	const want = `level=INFO msg=registered spec.type=bitmask_test.LimitedColor spec.valid=0x7 spec.clip=limit spec.form=bits spec.names=red,green,blue options.clip=limit options.nil=<nil>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got log %q, want %q", got, want)
	}
}
