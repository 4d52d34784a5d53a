package directive

// ModuleKind tags a module with the pipeline stage it can serve.
type ModuleKind uint8

const (
	// ModuleNone means no module; it doubles as the interpreter's
	// "no module open" state.
	ModuleNone ModuleKind = iota
	// ModuleGeneric is a reusable block with no pipeline stage of its own,
	// spliced into other modules with include_module.
	ModuleGeneric
	// ModuleVertex is a vertex shader module.
	ModuleVertex
	// ModuleFragment is a fragment shader module.
	ModuleFragment
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleNone:
		return "none"
	case ModuleGeneric:
		return "module"
	case ModuleVertex:
		return "vertex"
	case ModuleFragment:
		return "fragment"
	}
	return "unknown"
}

// Module is a named, kind-tagged block of shader source text assembled
// between a start directive and its matching #end.
type Module struct {
	Name string
	Kind ModuleKind
	Body string
}

// moduleRegistry maps module names to their definitions. Names are unique:
// the first definition wins and later definitions under the same name are
// rejected. The registry only lives for the duration of one top-level parse;
// the two modules referenced by the program are copied out of it.
type moduleRegistry struct {
	modules map[string]Module
}

func newModuleRegistry() *moduleRegistry {
	return &moduleRegistry{modules: make(map[string]Module)}
}

// insert adds a module under its name. It reports false, leaving the
// existing definition unchanged, when the name is already taken.
func (r *moduleRegistry) insert(m Module) bool {
	if _, exists := r.modules[m.Name]; exists {
		return false
	}
	r.modules[m.Name] = m
	return true
}

// lookup returns the module stored under name.
func (r *moduleRegistry) lookup(name string) (Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// aliasTable maps GLSL type names to target-language type names. The first
// definition for a key wins; later duplicates are accepted but have no
// effect and produce no diagnostic.
type aliasTable map[string]string

// insertIfAbsent records glslType -> targetType unless glslType is already
// mapped.
func (t aliasTable) insertIfAbsent(glslType, targetType string) {
	if _, exists := t[glslType]; exists {
		return
	}
	t[glslType] = targetType
}
