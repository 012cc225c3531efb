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
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"fillmore-labs.com/bitmaskenum/bitmask"
)

// funcMap provides helper functions available to the templates.
var funcMap = template.FuncMap{
	"quote": strconv.Quote,
	"recv":  func(name string) string { return strings.ToLower(name[:1]) },
}

const fileTmpl = `// Code generated by bitmaskgen. DO NOT EDIT.

package {{.Package}}

import "fillmore-labs.com/bitmaskenum/bitmask"
{{range .Enums}}{{template "enum" .}}{{end}}`

const enumTmpl = `{{define "enum"}}{{$e := .}}
// {{.Name}} is a bitmask enum.{{with .Description}}
// {{.}}{{end}}
type {{.Name}} {{.Type}}
{{if .Consts}}
const ({{range .Consts}}
	{{.Name}} {{$e.Name}} = {{.Value}}{{end}}
)
{{end}}
var {{.SpecVar}} = bitmask.{{.Builder}}[{{.Name}}]({{.Arg}}{{if .Clip}}, bitmask.WithClip(bitmask.ClipLimit){{end}})

// BitmaskSpec registers {{.Name}} as a bitmask enum.
func ({{.Name}}) BitmaskSpec() *bitmask.Spec[{{.Name}}] { return {{.SpecVar}} }

func ({{recv .Name}} {{.Name}}) String() string { return bitmask.Format({{recv .Name}}) }

// MarshalText implements [encoding.TextMarshaler].
func ({{recv .Name}} {{.Name}}) MarshalText() ([]byte, error) { return bitmask.MarshalText({{recv .Name}}) }

// UnmarshalText implements [encoding.TextUnmarshaler].
func ({{recv .Name}} *{{.Name}}) UnmarshalText(text []byte) error { return bitmask.UnmarshalText({{recv .Name}}, text) }
{{end}}`

// templates holds the parsed code generation templates.
var templates = template.Must(template.New("file").Funcs(funcMap).Parse(fileTmpl + enumTmpl))

// fileData is the template data of a generated file.
type fileData struct {
	Package string
	Enums   []enumData
}

// enumData is the template data of a single bitmask enum.
type enumData struct {
	Name        string
	Type        string
	Description string
	Consts      []constData
	SpecVar     string
	Builder     string
	Arg         string
	Clip        bool
}

type constData struct {
	Name  string
	Value string
}

// Generate renders the Go source for all enums of f.
func Generate(f *RawFile) (string, error) {
	data := fileData{Package: f.Package, Enums: make([]enumData, 0, len(f.Enums))}
	for i := range f.Enums {
		data.Enums = append(data.Enums, newEnumData(&f.Enums[i]))
	}

	var b strings.Builder
	if err := templates.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return b.String(), nil
}

func newEnumData(d *RawEnumDef) enumData {
	e := enumData{
		Name:        d.Name,
		Type:        d.Type,
		Description: d.Description,
		SpecVar:     firstLower(d.Name) + "Spec",
		Clip:        d.Clip == bitmask.ClipLimit,
	}

	switch {
	case len(d.Bits) > 0:
		e.Builder = "MustBitNames"
		e.Arg = strconv.Quote(strings.Join(d.Bits, ","))

		for i, n := range d.Bits {
			if n == "" {
				continue
			}

			shift := len(d.Bits) - 1 - i
			e.Consts = append(e.Consts, constData{Name: constName(d.Name, n), Value: "1 << " + strconv.Itoa(shift)})
		}

	case len(d.Values) > 0:
		e.Builder = "MustValueNames"
		e.Arg = strconv.Quote(strings.Join(d.Values, ","))

		for i, n := range d.Values {
			if n == "" {
				continue
			}

			e.Consts = append(e.Consts, constData{Name: constName(d.Name, n), Value: strconv.Itoa(i)})
		}

	default:
		e.Builder = "MustSpec"
		e.Arg = "0x" + strconv.FormatUint(d.ValidBits, 16)
	}

	return e
}

// constName returns the constant for a named bit or value, e.g. "RGB" and "dark-red" give "RGBDarkRed".
func constName(typeName, name string) string {
	var b strings.Builder

	b.WriteString(typeName)

	upper := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			upper = true

		case upper:
			b.WriteRune(unicode.ToUpper(r))

			upper = false

		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// firstLower lowercases the leading run of upper case letters, e.g. "RGB" gives "rgb", "Color" gives "color".
func firstLower(name string) string {
	rs := []rune(name)
	for i := 0; i < len(rs) && unicode.IsUpper(rs[i]); i++ {
		if i > 0 && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
			break
		}

		rs[i] = unicode.ToLower(rs[i])
	}

	return string(rs)
}
