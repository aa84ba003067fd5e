// Package a2l provides a parser and validator for ASAM MCD-2MC ("A2L")
// description files.
//
// It parses A2L source text, driven entirely by a declarative keyword
// registry (see the schema package), into an AST (see the ast package)
// that can be walked, re-emitted as source text, or exported as YAML.
//
// Example usage:
//
//	root, err := a2l.Parse(src)
//	if err != nil {
//	    // handle err: a *parser.Error, or a wrapped resolver error
//	    // when an /include cannot be found
//	}
//	project, _ := root.Child("PROJECT")
package a2l

import (
	"os"
	"path/filepath"

	"github.com/cschuler/go-a2l/ast"
	"github.com/cschuler/go-a2l/lexer"
	"github.com/cschuler/go-a2l/parser"
	"github.com/cschuler/go-a2l/schema"
)

// Parse parses A2L source held entirely in memory. /include directives
// in src fail to resolve, since there is no filesystem context to
// search; use ParseFile for input that includes other files.
func Parse(src string) (*ast.Node, error) {
	return parser.Parse(src)
}

// ParseFile reads path and parses it, resolving any /include directive
// relative to path's directory and the given extra search directories.
func ParseFile(path string, includeDirs ...string) (*ast.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	resolver := parser.OSIncludeResolver{Dirs: append([]string{filepath.Dir(path)}, includeDirs...)}
	p := parser.NewWithResolver(lexer.New(string(data)), resolver)
	return p.ParseRoot()
}

// Re-export the core types for convenience, so a caller need not import
// the ast, parser and schema packages directly for common use.
type (
	Node       = ast.Node
	Attr       = ast.Attr
	Error      = parser.Error
	ErrorKind  = parser.ErrorKind
	Descriptor = schema.Descriptor
)

// Walk traverses n's subtree in pre-order. See ast.Walk.
func Walk(n *Node, visit func(*Node) bool) {
	ast.Walk(n, visit)
}

// EmitYAML renders n as YAML, for tooling that prefers a structured
// export over round-tripped A2L source text.
func EmitYAML(n *Node) ([]byte, error) {
	return ast.EmitYAML(n)
}

// Lookup returns the schema descriptor for an A2L keyword, if known.
func Lookup(keyword string) (*Descriptor, bool) {
	return schema.Lookup(keyword)
}
