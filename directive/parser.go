package directive

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Program is the single top-level pairing of one vertex and one fragment
// module, identified by name.
type Program struct {
	Name           string
	VertexSource   string
	FragmentSource string
}

// Result is the outcome of one top-level parse: the assembled program, the
// type-alias table for downstream binding generation, and every diagnostic
// reported along the way. When no #program directive completed, the Program
// fields are empty; whether that is an error is up to the caller.
type Result struct {
	Program     Program
	TypeAliases map[string]string
	Diagnostics Diagnostics
}

// OK reports whether the parse finished without diagnostics.
func (r Result) OK() bool {
	return !r.Diagnostics.HasErrors()
}

// Parser drives the scan-extract-tokenize-interpret loop over a root source
// buffer and every file it transitively includes. All state below is
// transient bookkeeping for one top-level parse; Result copies out the
// pieces that survive.
type Parser struct {
	resolver includeResolver
	stack    []*fileCursor
	depth    int

	current     ModuleKind
	moduleName  string
	moduleParts []string

	modules *moduleRegistry
	aliases aliasTable

	program        Program
	programDefined bool

	diags Diagnostics
}

// NewParser creates a parser that resolves includes against fs.
func NewParser(fs afero.Fs) *Parser {
	return &Parser{
		resolver: includeResolver{fs: fs},
		modules:  newModuleRegistry(),
		aliases:  make(aliasTable),
	}
}

// ParseSource scans one source buffer to completion. name labels the buffer
// in diagnostics and may be empty for in-memory sources. searchPaths is the
// ordered directory list consulted by #include; an empty list disables
// inclusion. Included files are parsed recursively under the same parser, so
// the modules and program they define land in the same tables.
func (p *Parser) ParseSource(name, source string, searchPaths []string) {
	cur := newFileCursor(name, source)
	p.stack = append(p.stack, cur)

	for !cur.atEnd() {
		if cur.peek() == '/' && cur.peekNext() == '/' {
			cur.skipLineComment()
			continue
		}

		if cur.peek() == '#' {
			statement := cur.extractStatement()
			token := tokenizeStatement(statement)
			p.expandToken(token, searchPaths)
			cur.tokenEnd = cur.pos

			// Native GLSL preprocessor lines survive verbatim into the
			// open module's body, leading '#' included.
			if token.Kind == TokenGLSL && p.current != ModuleNone {
				p.moduleParts = append(p.moduleParts, cur.passthroughSpan())
			}
		}

		if cur.atEnd() {
			break
		}
		if cur.peek() == '\n' {
			cur.line++
		}
		cur.pos++
	}

	p.stack = p.stack[:len(p.stack)-1]
}

// Result extracts the assembled program and alias table, copied out of the
// parser's transient state so they stay valid after the parser (and the
// source buffers it scanned) are discarded.
func (p *Parser) Result() Result {
	aliases := make(map[string]string, len(p.aliases))
	for glslType, target := range p.aliases {
		aliases[glslType] = target
	}
	return Result{
		Program: Program{
			Name:           strings.Clone(p.program.Name),
			VertexSource:   strings.Clone(p.program.VertexSource),
			FragmentSource: strings.Clone(p.program.FragmentSource),
		},
		TypeAliases: aliases,
		Diagnostics: p.diags,
	}
}

// cursor returns the scan state of the file currently on top of the include
// stack.
func (p *Parser) cursor() *fileCursor {
	return p.stack[len(p.stack)-1]
}

// errorf reports a diagnostic at the current scan position.
func (p *Parser) errorf(format string, args ...any) {
	d := Diagnostic{Message: fmt.Sprintf(format, args...)}
	if len(p.stack) > 0 {
		cur := p.cursor()
		d.File = cur.name
		d.Line = cur.line
	}
	p.diags.Add(d)
}
