// Package directive implements the shaderpack directive language: a small
// preprocessor layered on top of GLSL source text that composes named
// modules, resolves nested file inclusion, and assembles a single program
// (one vertex module paired with one fragment module) together with a table
// of user-declared type-name aliases.
package directive

import (
	"fmt"
	"strings"
)

// TokenKind identifies a classified directive statement.
type TokenKind uint8

const (
	// Structural directives, owned by this parser. The order matches
	// keywordArgCounts below.
	TokenEnd TokenKind = iota
	TokenModule
	TokenVert
	TokenFrag
	TokenProgram
	TokenInclude
	TokenIncludeModule
	TokenCtypedef

	// TokenError carries a diagnostic message and has no semantic effect.
	TokenError
	// TokenGLSL marks a native GLSL preprocessor line that is passed through
	// into module output untouched.
	TokenGLSL
)

// structuralKeywords lists the directive keywords in TokenKind order.
var structuralKeywords = [...]string{
	"end",
	"module",
	"vert",
	"frag",
	"program",
	"include",
	"include_module",
	"ctypedef",
}

// keywordArgCounts gives the required argument count per structural keyword,
// in TokenKind order.
var keywordArgCounts = [...]int{
	0, // end
	1, // module
	1, // vert
	1, // frag
	3, // program
	1, // include
	1, // include_module
	2, // ctypedef
}

// glslKeywords is the set of native GLSL preprocessor directive names.
// Lines starting with one of these survive into the assembled output
// verbatim; everything else that is not structural is a syntax error.
var glslKeywords = map[string]struct{}{
	"define":    {},
	"undef":     {},
	"if":        {},
	"ifdef":     {},
	"ifndef":    {},
	"else":      {},
	"elif":      {},
	"endif":     {},
	"error":     {},
	"pragma":    {},
	"extension": {},
	"version":   {},
	"line":      {},
}

// String returns the keyword spelling for structural kinds and a descriptive
// name for the marker kinds.
func (k TokenKind) String() string {
	switch {
	case int(k) < len(structuralKeywords):
		return structuralKeywords[k]
	case k == TokenError:
		return "error"
	case k == TokenGLSL:
		return "glsl"
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is one classified directive statement. Structural tokens carry their
// positional arguments; error tokens carry a diagnostic message instead.
type Token struct {
	Kind TokenKind
	Args []string
	Err  string
}

// matchTokenKind classifies the leading word of a statement. Matching is
// case-sensitive and exact, structural keywords first.
func matchTokenKind(word string) TokenKind {
	for i, kw := range structuralKeywords {
		if word == kw {
			return TokenKind(i)
		}
	}
	if _, ok := glslKeywords[word]; ok {
		return TokenGLSL
	}
	return TokenError
}

// tokenizeStatement splits a statement into whitespace-delimited words and
// classifies it. There is no quoting or escaping; any run of whitespace
// separates words. Arity failures and unknown keywords yield error tokens.
func tokenizeStatement(statement string) Token {
	words := strings.Fields(statement)

	var keyword string
	if len(words) > 0 {
		keyword = words[0]
	}

	kind := matchTokenKind(keyword)
	if kind == TokenGLSL {
		return Token{Kind: TokenGLSL}
	}
	if kind == TokenError {
		return Token{
			Kind: TokenError,
			Err:  fmt.Sprintf("%s: Invalid token.", keyword),
		}
	}

	args := words[1:]
	if want := keywordArgCounts[kind]; len(args) != want {
		return Token{
			Kind: TokenError,
			Err:  fmt.Sprintf("%s: Expected %d argument(s), got %d.", keyword, want, len(args)),
		}
	}

	return Token{Kind: kind, Args: args}
}
