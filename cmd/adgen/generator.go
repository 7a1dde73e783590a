// Copyright 2025 go-densead Authors
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

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders hand-unrolled derivative vectors.
type Generator struct {
	Package       string // package clause of the output file
	NumericImport string // import path providing the Floats constraint
	Specs         []Specialization
}

var fileTemplate = template.Must(template.New("fixed").Parse(`// Code generated by adgen. DO NOT EDIT.

package {{.Package}}

import "{{.NumericImport}}"

var (
{{- range .Specs}}
	_ Derivs[float64, {{.TypeName}}[float64]] = {{.TypeName}}[float64]{}
{{- end}}
)

// MaxUnrolled is the largest derivative count with an unrolled vector type.
const MaxUnrolled = {{.Largest.Size}}
{{range $s := .Specs}}
// {{$s.TypeName}} stores {{$s.Size}} derivative{{if gt $s.Size 1}}s{{end}} in an array.
type {{$s.TypeName}}[T numeric.Floats] [{{$s.Size}}]T

func (d {{$s.TypeName}}[T]) Len() int   { return {{$s.Size}} }
func (d {{$s.TypeName}}[T]) At(i int) T { return d[i] }

func ({{$s.TypeName}}[T]) Zero() {{$s.TypeName}}[T] { return {{$s.TypeName}}[T]{} }

func ({{$s.TypeName}}[T]) Unit(i int) {{$s.TypeName}}[T] {
	var u {{$s.TypeName}}[T]
	u[i] = 1
	return u
}

func (d {{$s.TypeName}}[T]) Set(i int, v T) {{$s.TypeName}}[T] {
	d[i] = v
	return d
}

func (d {{$s.TypeName}}[T]) Scale(a T) {{$s.TypeName}}[T] {
	return {{$s.TypeName}}[T]{
{{- range $s.Indices}}
		a * d[{{.}}],
{{- end}}
	}
}

func (d {{$s.TypeName}}[T]) Combine(a T, o {{$s.TypeName}}[T], b T) {{$s.TypeName}}[T] {
	return {{$s.TypeName}}[T]{
{{- range $s.Indices}}
		a*d[{{.}}] + b*o[{{.}}],
{{- end}}
	}
}

func (d {{$s.TypeName}}[T]) IsZero() bool {
	return {{range $i := $s.Indices}}d[{{$i}}] == 0{{if not ($s.Last $i)}} &&
		{{end}}{{end}}
}
{{end -}}
`))

// Largest returns the widest specialization.
func (g *Generator) Largest() Specialization {
	return g.Specs[len(g.Specs)-1]
}

// Generate renders and formats the output file.
func (g *Generator) Generate(filename string) ([]byte, error) {
	if len(g.Specs) == 0 {
		return nil, fmt.Errorf("no specializations to generate")
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
