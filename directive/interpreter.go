package directive

import "strings"

// expandToken applies one classified directive to the parser state. Every
// handler checks its own preconditions and reports violations as
// diagnostics; none of them stops the scan.
func (p *Parser) expandToken(token Token, searchPaths []string) {
	switch token.Kind {
	case TokenEnd:
		p.endModule()

	case TokenModule:
		p.startModule(token.Args[0], ModuleGeneric, "New module started before ending the last module.")

	case TokenVert:
		p.startModule(token.Args[0], ModuleVertex, "New vertex module started before ending the last module.")

	case TokenFrag:
		p.startModule(token.Args[0], ModuleFragment, "New fragment module started before ending the last module.")

	case TokenProgram:
		p.defineProgram(token.Args[0], token.Args[1], token.Args[2])

	case TokenInclude:
		p.includeFile(token.Args[0], searchPaths)

	case TokenIncludeModule:
		p.includeModule(token.Args[0])

	case TokenCtypedef:
		p.aliases.insertIfAbsent(strings.Clone(token.Args[0]), strings.Clone(token.Args[1]))

	case TokenError:
		p.errorf("%s", token.Err)

	case TokenGLSL:
		// Passthrough; body handling happens in the scan loop.
	}

	// Body text accumulates incrementally: after every directive handled
	// while a module is open, the ordinary text since the previous directive
	// becomes a body fragment.
	if p.current != ModuleNone {
		p.addModulePart()
	}
}

// addModulePart appends the plain-text span preceding the current directive
// to the open module's pending fragments, subject to the span-collapse rule.
func (p *Parser) addModulePart() {
	part, ok := p.cursor().plainSpan()
	if !ok {
		return
	}
	p.moduleParts = append(p.moduleParts, part)
}

// startModule opens a module of the given kind. Modules do not nest: a start
// directive while another module is open is reported and ignored.
func (p *Parser) startModule(name string, kind ModuleKind, nestedMsg string) {
	if p.current != ModuleNone {
		p.errorf("%s: %s", name, nestedMsg)
		return
	}
	p.moduleName = name
	p.current = kind
}

// endModule flushes the pending fragments, trims the joined body, and
// registers the module. The first definition under a name wins; a
// redefinition is reported and the original retained.
func (p *Parser) endModule() {
	if p.current == ModuleNone {
		p.errorf("Extraneous end statement.")
		return
	}

	p.addModulePart()

	module := Module{
		Name: strings.Clone(p.moduleName),
		Kind: p.current,
		Body: strings.TrimSpace(strings.Join(p.moduleParts, "")),
	}
	if !p.modules.insert(module) {
		p.errorf("%s: Module has already been defined.", p.moduleName)
	}

	p.current = ModuleNone
	p.moduleName = ""
	p.moduleParts = nil
}

// defineProgram records the single program. Both module references are
// checked and both failures reported in the same pass rather than
// short-circuiting on the first.
func (p *Parser) defineProgram(name, vertKey, fragKey string) {
	if p.programDefined {
		p.errorf("%s: Program has already been defined.", name)
		return
	}

	vert, vertOK := p.modules.lookup(vertKey)
	frag, fragOK := p.modules.lookup(fragKey)

	failed := false
	if !vertOK || vert.Kind != ModuleVertex {
		p.errorf("%s: Vertex module not found.", vertKey)
		failed = true
	}
	if !fragOK || frag.Kind != ModuleFragment {
		p.errorf("%s: Fragment module not found.", fragKey)
		failed = true
	}
	if failed {
		return
	}

	p.program = Program{
		Name:           name,
		VertexSource:   vert.Body,
		FragmentSource: frag.Body,
	}
	p.programDefined = true
}

// includeFile resolves the target against the caller's search paths and
// recursively parses it under the current parser state. Nested includes
// resolve against the same search-path list as the including file; the
// included file's own directory is not added.
func (p *Parser) includeFile(name string, searchPaths []string) {
	if len(searchPaths) == 0 {
		p.errorf("Cannot include files without providing search paths.")
		return
	}
	if p.depth >= maxIncludeDepth {
		p.errorf("%s: Maximum include depth (%d) exceeded.", name, maxIncludeDepth)
		return
	}

	content, path, ok := p.resolver.resolve(name, searchPaths)
	if !ok {
		p.errorf("Couldn't find file %s, in the provided paths.", name)
		return
	}

	p.depth++
	p.ParseSource(path, content, searchPaths)
	p.depth--
}

// includeModule splices a previously defined module's body into the open
// module as one fragment. Outside any module the directive has no effect
// beyond the lookup.
func (p *Parser) includeModule(name string) {
	module, ok := p.modules.lookup(name)
	if !ok {
		p.errorf("%s: Module couldn't be found.", name)
		return
	}
	if p.current == ModuleNone {
		return
	}
	p.moduleParts = append(p.moduleParts, module.Body)
}
