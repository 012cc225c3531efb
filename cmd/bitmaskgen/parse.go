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

package main

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/bitmaskenum/bitmask"
)

// RawFile represents a set of bitmask enum definitions loaded from YAML.
type RawFile struct {
	Package string       `yaml:"package"`
	Enums   []RawEnumDef `yaml:"enums"`
}

// RawEnumDef represents a single bitmask enum definition.
type RawEnumDef struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"` // "uint8", "uint16", ...
	Description string       `yaml:"description"`
	Clip        bitmask.Clip `yaml:"clip"`      // "none" or "limit"
	Bits        []string     `yaml:"bits"`      // bit names, most significant first
	Values      []string     `yaml:"values"`    // value names, starting at 0
	ValidBits   uint64       `yaml:"validBits"` // when no names are given
}

var (
	errMissing   = errors.New("missing field")
	errInvalid   = errors.New("invalid definition")
	errDuplicate = errors.New("duplicate name")
)

// LoadFile reads and parses bitmask enum definitions from a YAML file.
func LoadFile(path string) (*RawFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return ParseFile(data)
}

// ParseFile parses bitmask enum definitions from YAML bytes.
func ParseFile(data []byte) (*RawFile, error) {
	var f RawFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}

	if f.Package == "" {
		return nil, fmt.Errorf("%w: package", errMissing)
	}

	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("%w: package name %q", errInvalid, f.Package)
	}

	seen := make(map[string]struct{}, len(f.Enums))
	for i := range f.Enums {
		def := &f.Enums[i]
		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("%w: enum %s", errDuplicate, def.Name)
		}

		seen[def.Name] = struct{}{}

		if err := def.check(); err != nil {
			return nil, fmt.Errorf("enum %q: %w", def.Name, err)
		}
	}

	return &f, nil
}

// check validates the definition, building its spec the way the generated code will.
func (d *RawEnumDef) check() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name", errMissing)
	}

	if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
		return fmt.Errorf("%w: type name %q is not an exported identifier", errInvalid, d.Name)
	}

	forms := 0
	for _, given := range []bool{len(d.Bits) > 0, len(d.Values) > 0, d.ValidBits != 0} {
		if given {
			forms++
		}
	}

	if forms != 1 {
		return fmt.Errorf("%w: exactly one of bits, values or validBits is required", errInvalid)
	}

	if err := d.checkNames(); err != nil {
		return err
	}

	_, err := d.spec()

	return err
}

func (d *RawEnumDef) checkNames() error {
	seen := make(map[string]struct{})

	for _, n := range d.names() {
		if n == "" {
			continue
		}

		if strings.ContainsAny(n, ",+") || strings.TrimSpace(n) != n {
			return fmt.Errorf("%w: name %q", errInvalid, n)
		}

		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: %q", errDuplicate, n)
		}

		seen[n] = struct{}{}

		if c := constName(d.Name, n); !token.IsIdentifier(c) {
			return fmt.Errorf("%w: name %q gives constant %q", errInvalid, n, c)
		}
	}

	return nil
}

func (d *RawEnumDef) names() []string {
	if len(d.Bits) > 0 {
		return d.Bits
	}

	return d.Values
}

// spec builds the spec of the definition for its underlying type.
func (d *RawEnumDef) spec() (slog.LogValuer, error) {
	switch d.Type {
	case "uint8":
		return specAs[uint8](d)
	case "uint16":
		return specAs[uint16](d)
	case "uint32":
		return specAs[uint32](d)
	case "uint64":
		return specAs[uint64](d)
	case "uint":
		return specAs[uint](d)
	case "int8":
		return specAs[int8](d)
	case "int16":
		return specAs[int16](d)
	case "int32":
		return specAs[int32](d)
	case "int64":
		return specAs[int64](d)
	case "int":
		return specAs[int](d)
	case "":
		return nil, fmt.Errorf("%w: type", errMissing)
	default:
		return nil, fmt.Errorf("%w: type %q is not an integer type", errInvalid, d.Type)
	}
}

func specAs[E bitmask.Integer](d *RawEnumDef) (slog.LogValuer, error) {
	opt := bitmask.WithClip(d.Clip)

	switch {
	case len(d.Bits) > 0:
		return logValuer[E](bitmask.ParseBitNames[E](strings.Join(d.Bits, ","), opt))

	case len(d.Values) > 0:
		return logValuer[E](bitmask.ParseValueNames[E](strings.Join(d.Values, ","), opt))

	default:
		return logValuer[E](bitmask.NewSpec[E](d.ValidBits, opt))
	}
}

func logValuer[E any](s *bitmask.Spec[E], err error) (slog.LogValuer, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}
