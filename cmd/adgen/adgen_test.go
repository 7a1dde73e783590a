package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSpecializations(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		lo, hi   int
		wantLen  int
		wantLast string
		wantErr  bool
	}{
		{"default", "fixed", 1, 12, 12, "Fixed12", false},
		{"single", "vec", 3, 3, 1, "Vec3", false},
		{"empty prefix", "", 1, 2, 0, "", true},
		{"zero size", "fixed", 0, 4, 0, "", true},
		{"inverted", "fixed", 5, 4, 0, "", true},
		{"too large", "fixed", 1, MaxSize + 1, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Specializations(tt.prefix, tt.lo, tt.hi)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Specializations(%q, %d, %d) error = %v, wantErr %v", tt.prefix, tt.lo, tt.hi, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("Specializations returned %d specs, want %d", len(got), tt.wantLen)
			}
			if last := got[len(got)-1].TypeName; last != tt.wantLast {
				t.Errorf("last TypeName = %q, want %q", last, tt.wantLast)
			}
		})
	}
}

func TestSpecializationIndices(t *testing.T) {
	s := Specialization{Size: 4, TypeName: "Fixed4"}
	idx := s.Indices()
	if len(idx) != 4 || idx[0] != 0 || idx[3] != 3 {
		t.Errorf("Indices() = %v", idx)
	}
	if s.Last(2) || !s.Last(3) {
		t.Error("Last")
	}
}

func generate(t *testing.T, lo, hi int) string {
	t.Helper()
	specs, err := Specializations("fixed", lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	g := &Generator{Package: "densead", NumericImport: "github.com/ajroetker/go-densead/numeric", Specs: specs}
	src, err := g.Generate("fixed_gen.go")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return string(src)
}

func TestGeneratorEndToEnd(t *testing.T) {
	src := generate(t, 1, 3)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixed_gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	if !ast.IsGenerated(file) {
		t.Error("missing generated-code header")
	}

	methods := map[string]int{}
	types := map[string]bool{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			methods[d.Name.Name]++
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = true
				}
			}
		}
	}
	for _, name := range []string{"Fixed1", "Fixed2", "Fixed3"} {
		if !types[name] {
			t.Errorf("type %s not generated", name)
		}
	}
	for _, m := range []string{"Len", "At", "Zero", "Unit", "Set", "Scale", "Combine", "IsZero"} {
		if methods[m] != 3 {
			t.Errorf("method %s generated %d times, want 3", m, methods[m])
		}
	}

	for _, want := range []string{
		"const MaxUnrolled = 3",
		"a*d[2] + b*o[2],",
		"return d[0] == 0 &&",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateNoSpecs(t *testing.T) {
	if _, err := (&Generator{Package: "densead"}).Generate("x.go"); err == nil {
		t.Error("expected error for empty Specs")
	}
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fixed_gen.go")
	if err := run([]string{"--max", "2", "-o", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "type Fixed2[T numeric.Floats] [2]T") {
		t.Errorf("unexpected output:\n%s", data)
	}
	if err := run([]string{"--max", "0"}); err == nil {
		t.Error("run accepted an empty size range")
	}
}

func TestGoGenerateDirective(t *testing.T) {
	const directive = "//go:generate go run ../cmd/adgen "
	doc, err := os.ReadFile(filepath.Join("..", "..", "densead", "doc.go"))
	if err != nil {
		t.Fatal(err)
	}
	var args []string
	for line := range strings.Lines(string(doc)) {
		if rest, ok := strings.CutPrefix(line, directive); ok {
			args = strings.Fields(rest)
			break
		}
	}
	if args == nil {
		t.Fatalf("densead/doc.go has no %q line", directive)
	}

	t.Chdir(t.TempDir())
	if err := run(args); err != nil {
		t.Fatalf("run(%q): %v", args, err)
	}
	data, err := os.ReadFile("fixed_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "const MaxUnrolled = 12") {
		t.Errorf("generated file does not declare MaxUnrolled = 12")
	}
}
