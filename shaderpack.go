// Package shaderpack is the front end of a GLSL shader build tool.
//
// shaderpack parses a small directive language layered on top of GLSL source
// text and assembles a single named program (one vertex module paired with
// one fragment module) plus a table of user-declared type-name aliases.
// Downstream stages compile the assembled GLSL to a shader binary and
// generate target-language bindings from the alias table; this package only
// produces their input.
//
// The directive surface:
//
//	#module NAME                reusable block, spliced with #include_module
//	#vert NAME / #frag NAME     stage modules
//	#end                        closes the open module
//	#program NAME VERT FRAG     pairs a vertex and a fragment module
//	#include relative/path      parses another file in place
//	#include_module NAME        splices a defined module's body
//	#ctypedef GLSL_TYPE TARGET  records a type alias for binding generation
//
// Lines beginning with a native GLSL preprocessor keyword (#version,
// #define, ...) pass through into the assembled output untouched.
//
// Example usage:
//
//	res := shaderpack.Parse(source, shaderpack.DefaultOptions())
//	if !res.OK() {
//	    log.Fatal(res.Diagnostics)
//	}
//	compile(res.Program.VertexSource, res.Program.FragmentSource)
//
// Parsing never aborts on the first problem: the whole input is consumed and
// every detectable problem lands in Result.Diagnostics.
package shaderpack

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/gogpu/shaderpack/directive"
)

// Options configures a parse.
type Options struct {
	// SearchPaths is the ordered list of directories consulted, in order, to
	// resolve #include targets. Empty disables inclusion.
	SearchPaths []string

	// FS is the filesystem includes are read from. Defaults to the host
	// filesystem; tests substitute afero.NewMemMapFs().
	FS afero.Fs
}

// DefaultOptions returns options reading from the host filesystem with no
// search paths.
func DefaultOptions() Options {
	return Options{FS: afero.NewOsFs()}
}

func (o Options) fs() afero.Fs {
	if o.FS == nil {
		return afero.NewOsFs()
	}
	return o.FS
}

// Parse parses shader source text and assembles its program and type-alias
// table. All problems are reported through Result.Diagnostics; Parse itself
// never fails.
func Parse(source string, opts Options) directive.Result {
	p := directive.NewParser(opts.fs())
	p.ParseSource("", source, opts.SearchPaths)
	return p.Result()
}

// ParseFile reads path through the configured filesystem and parses it. The
// file's own directory is placed ahead of opts.SearchPaths for the top-level
// parse, so sibling files resolve without extra configuration. The returned
// error covers the root read only; parse problems are diagnostics.
func ParseFile(path string, opts Options) (directive.Result, error) {
	fs := opts.fs()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return directive.Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	searchPaths := append([]string{filepath.Dir(path)}, opts.SearchPaths...)
	p := directive.NewParser(fs)
	p.ParseSource(path, string(data), searchPaths)
	return p.Result(), nil
}
