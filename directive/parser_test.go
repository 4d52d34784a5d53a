package directive

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

// parseString runs a full parse over an in-memory source with no filesystem
// behind it.
func parseString(t *testing.T, source string, searchPaths []string) Result {
	t.Helper()
	p := NewParser(afero.NewMemMapFs())
	p.ParseSource("test.glsl", source, searchPaths)
	return p.Result()
}

func TestParseProgram(t *testing.T) {
	source := "#vert foo\n" +
		"void main(){}\n" +
		"#end\n" +
		"#frag bar\n" +
		"void main(){}\n" +
		"#end\n" +
		"#program prog foo bar\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.Name != "prog" {
		t.Errorf("expected program name %q, got %q", "prog", res.Program.Name)
	}
	if res.Program.VertexSource != "void main(){}" {
		t.Errorf("unexpected vertex source: %q", res.Program.VertexSource)
	}
	if res.Program.FragmentSource != "void main(){}" {
		t.Errorf("unexpected fragment source: %q", res.Program.FragmentSource)
	}
}

func TestParsePassthroughInsideModule(t *testing.T) {
	source := "#vert foo\n" +
		"#version 450\n" +
		"void main(){}\n" +
		"#end\n" +
		"#frag bar\n" +
		"void main(){}\n" +
		"#end\n" +
		"#program prog foo bar\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	// The native GLSL line survives verbatim, leading '#' included.
	if res.Program.VertexSource != "#version 450\nvoid main(){}" {
		t.Errorf("unexpected vertex source: %q", res.Program.VertexSource)
	}
}

func TestParseUnknownDirectiveInModule(t *testing.T) {
	source := "#vert foo\n" +
		"void a(){}\n" +
		"#foobar\n" +
		"void b(){}\n" +
		"#end\n" +
		"#frag bar\n" +
		"x\n" +
		"#end\n" +
		"#program p foo bar\n"

	res := parseString(t, source, nil)
	want := []string{"foobar: Invalid token."}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
	// The bad directive line contributes nothing; the text around it stays.
	if res.Program.VertexSource != "void a(){}\n\nvoid b(){}" {
		t.Errorf("unexpected vertex source: %q", res.Program.VertexSource)
	}
}

func TestParseDuplicateModule(t *testing.T) {
	source := "#vert foo\n" +
		"first\n" +
		"#end\n" +
		"#vert foo\n" +
		"second\n" +
		"#end\n" +
		"#frag fs\n" +
		"f\n" +
		"#end\n" +
		"#program p foo fs\n"

	res := parseString(t, source, nil)
	want := []string{"foo: Module has already been defined."}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
	// The first definition is retained unchanged.
	if res.Program.VertexSource != "first" {
		t.Errorf("expected first module body to win, got %q", res.Program.VertexSource)
	}
}

func TestParseExtraneousEnd(t *testing.T) {
	res := parseString(t, "#end\n", nil)
	want := []string{"Extraneous end statement."}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
	if res.Program.Name != "" {
		t.Errorf("expected no program, got %q", res.Program.Name)
	}
}

func TestParseProgramMissingModules(t *testing.T) {
	res := parseString(t, "#program p a b\n", nil)
	// Both lookups are checked and both failures reported in one pass.
	want := []string{
		"a: Vertex module not found.",
		"b: Fragment module not found.",
	}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
	if res.Program.Name != "" {
		t.Errorf("expected no program, got %q", res.Program.Name)
	}
}

func TestParseProgramKindMismatch(t *testing.T) {
	// a is generic and b is a fragment module; using them in swapped
	// positions fails both kind checks.
	source := "#module a\nx\n#end\n" +
		"#frag b\ny\n#end\n" +
		"#program p b a\n"

	res := parseString(t, source, nil)
	want := []string{
		"b: Vertex module not found.",
		"a: Fragment module not found.",
	}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
}

func TestParseProgramRedefined(t *testing.T) {
	source := "#vert v\nx\n#end\n" +
		"#frag f\ny\n#end\n" +
		"#program one v f\n" +
		"#program two v f\n"

	res := parseString(t, source, nil)
	want := []string{"two: Program has already been defined."}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Fatalf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
	if res.Program.Name != "one" {
		t.Errorf("expected first program to win, got %q", res.Program.Name)
	}
}

func TestParseNestedModuleStart(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"#vert a\n#module b\n", "b: New module started before ending the last module."},
		{"#module a\n#vert b\n", "b: New vertex module started before ending the last module."},
		{"#vert a\n#frag b\n", "b: New fragment module started before ending the last module."},
	}

	for _, tt := range tests {
		res := parseString(t, tt.source, nil)
		msgs := res.Diagnostics.Messages()
		if len(msgs) != 1 || msgs[0] != tt.want {
			t.Errorf("%q: expected [%q], got %v", tt.source, tt.want, msgs)
		}
	}
}

func TestParseCtypedefFirstWins(t *testing.T) {
	source := "#ctypedef vec3 Vector3\n" +
		"#ctypedef vec3 Vec3Alt\n" +
		"#ctypedef mat4 Matrix4\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	want := map[string]string{"vec3": "Vector3", "mat4": "Matrix4"}
	if !reflect.DeepEqual(res.TypeAliases, want) {
		t.Errorf("expected aliases %v, got %v", want, res.TypeAliases)
	}
}

func TestParseUnclosedModuleAtEOF(t *testing.T) {
	// Source ending with a module still open: no diagnostic, the pending
	// fragments are simply discarded.
	res := parseString(t, "#vert foo\nbody", nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.Name != "" {
		t.Errorf("expected no program, got %q", res.Program.Name)
	}
}

func TestParseCommentHidesDirective(t *testing.T) {
	res := parseString(t, "// #end\n", nil)
	if res.Diagnostics.HasErrors() {
		t.Errorf("commented-out directive should be ignored, got %v", res.Diagnostics.Messages())
	}
}

func TestParseCommentsNotInBody(t *testing.T) {
	source := "#vert foo\n" +
		"x // note\n" +
		"y\n" +
		"#end\n" +
		"#frag bar\n" +
		"z\n" +
		"#end\n" +
		"#program p foo bar\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.VertexSource != "x \ny" {
		t.Errorf("expected comment text stripped from body, got %q", res.Program.VertexSource)
	}
}

func TestParseSpanCollapse(t *testing.T) {
	// The single byte between a directive's newline and an indented '#' on
	// the next line forms a 2-byte raw interval, which is dropped; the two
	// passthrough lines end up directly adjacent.
	source := "#vert a\n" +
		"#define X\n" +
		" #define Y\n" +
		"#end\n" +
		"#frag b\nz\n#end\n" +
		"#program p a b\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.VertexSource != "#define X#define Y" {
		t.Errorf("unexpected vertex source: %q", res.Program.VertexSource)
	}
}

func TestParseIncludeModule(t *testing.T) {
	source := "#module lib\n" +
		"vec3 helper(){}\n" +
		"#end\n" +
		"#vert v\n" +
		"#include_module lib\n" +
		"void main(){}\n" +
		"#end\n" +
		"#frag f\nx\n#end\n" +
		"#program p v f\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.VertexSource != "vec3 helper(){}\n\nvoid main(){}" {
		t.Errorf("unexpected vertex source: %q", res.Program.VertexSource)
	}
}

func TestParseIncludeModuleMissing(t *testing.T) {
	res := parseString(t, "#include_module nope\n", nil)
	want := []string{"nope: Module couldn't be found."}
	if !reflect.DeepEqual(res.Diagnostics.Messages(), want) {
		t.Errorf("expected diagnostics %v, got %v", want, res.Diagnostics.Messages())
	}
}

func TestParseIncludeModuleOutsideModule(t *testing.T) {
	// Splicing outside any open module resolves the name but has no other
	// effect and produces no diagnostic.
	source := "#module lib\nx\n#end\n" +
		"#include_module lib\n"

	res := parseString(t, source, nil)
	if res.Diagnostics.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
}

func TestParseDiagnosticPositions(t *testing.T) {
	res := parseString(t, "x\n#foobar\n", nil)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.File != "test.glsl" || d.Line != 2 {
		t.Errorf("expected test.glsl:2, got %s:%d", d.File, d.Line)
	}
}

func TestParseEmptySource(t *testing.T) {
	res := parseString(t, "", nil)
	if res.Diagnostics.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics.Messages())
	}
	if res.Program.Name != "" || len(res.TypeAliases) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestParseIdempotence(t *testing.T) {
	source := "#ctypedef vec3 Vector3\n" +
		"#vert v\n#version 450\nvoid main(){}\n#end\n" +
		"#frag f\nvoid main(){}\n#end\n" +
		"#program p v f\n"

	first := parseString(t, source, nil)
	second := parseString(t, source, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs:\n%+v\n%+v", first, second)
	}
}
