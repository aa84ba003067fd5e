package ast

import "github.com/goccy/go-yaml"

// EmitYAML renders the subtree rooted at n as YAML, for tooling that
// wants a structured view of the tree rather than round-tripped A2L
// source.
func EmitYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(n)
}
