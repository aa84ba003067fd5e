// Package ast defines the parsed tree for A2L description files.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cschuler/go-a2l/token"
)

// RootKeyword names the synthetic node that owns a file's top-level
// ASAP2_VERSION, A2ML_VERSION and PROJECT blocks. It never appears in
// source text and never has a Pos.
const RootKeyword = "<root>"

// Attr is a single typed attribute value attached to a node, in the
// order it was written in source.
type Attr struct {
	Name string         `yaml:"name"`
	Kind token.AttrKind `yaml:"kind"`

	Uint  uint16  `yaml:"uint,omitempty"`
	Int   int16   `yaml:"int,omitempty"`
	Ulong uint32  `yaml:"ulong,omitempty"`
	Long  int32   `yaml:"long,omitempty"`
	Float float64 `yaml:"float,omitempty"`
	Str   string  `yaml:"str,omitempty"` // String, Ident, Enum and its specializations
}

// String renders the attribute's value the way it would appear in
// source, without its name.
func (a Attr) String() string {
	switch a.Kind {
	case token.KindUint:
		return strconv.FormatUint(uint64(a.Uint), 10)
	case token.KindInt:
		return strconv.FormatInt(int64(a.Int), 10)
	case token.KindUlong:
		return strconv.FormatUint(uint64(a.Ulong), 10)
	case token.KindLong:
		return strconv.FormatInt(int64(a.Long), 10)
	case token.KindFloat:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case token.KindString:
		return `"` + strings.ReplaceAll(a.Str, `"`, `""`) + `"`
	default:
		return a.Str
	}
}

// CompuPair is one IN/OUT value pair in a COMPU_TAB or COMPU_VTAB body.
type CompuPair struct {
	In  float64 `yaml:"in"`
	Out string  `yaml:"out"`
}

// CompuTriplet is one range/OUT entry in a COMPU_VTAB_RANGE body.
type CompuTriplet struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	Out string  `yaml:"out"`
}

// Node is a single A2L block or inline keyword. Block keywords carry
// Children; inline keywords never do. A2ML carries its opaque body in
// Text instead of Attrs/Children; ANNOTATION_TEXT carries its strings
// in Variadic.
type Node struct {
	Keyword string         `yaml:"keyword"`
	Pos     token.Position `yaml:"pos"`

	// Block records whether this node was written as /begin NAME ... /end
	// NAME in source (true) or as a single inline line (false). It is
	// set by the parser, not inferred from
	// which of the fields below happen to be populated, since a
	// legally-parsed Block keyword with no child occurrences, no text,
	// and no tabular rows still needs /begin/.../end on re-emission.
	Block bool `yaml:"block"`

	Attrs    []Attr `yaml:"attrs,omitempty"`
	Variadic []Attr `yaml:"variadic,omitempty"`

	Children []*Node `yaml:"children,omitempty"`

	Text string `yaml:"text,omitempty"`

	Pairs    []CompuPair    `yaml:"pairs,omitempty"`
	Triplets []CompuTriplet `yaml:"triplets,omitempty"`
}

// Attr looks up a fixed attribute by name.
func (n *Node) Attr(name string) (Attr, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Child returns the first child with the given keyword. Use for
// keywords the schema marks as appearing at most once.
func (n *Node) Child(keyword string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOf returns every child with the given keyword, in source
// order. Use for keywords the schema marks Multiple.
func (n *Node) ChildrenOf(keyword string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Keyword == keyword {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and every descendant in pre-order depth-first
// sequence. If visit returns false, n's children are skipped.
func Walk(n *Node, visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// String renders n and its subtree back into A2L source text. The
// output is not guaranteed byte-identical to any original input, but
// parsing it again produces an equivalent tree.
func (n *Node) String() string {
	var out strings.Builder
	n.write(&out, 0)
	return out.String()
}

func (n *Node) write(out *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.Keyword == RootKeyword {
		for _, c := range n.Children {
			c.write(out, depth)
		}
		return
	}

	open := indent
	if n.Block {
		open += "/begin "
	}
	open += n.Keyword
	for _, a := range n.Attrs {
		open += " " + a.String()
	}
	for _, a := range n.Variadic {
		open += " " + a.String()
	}
	out.WriteString(open)
	out.WriteString("\n")

	if n.Text != "" {
		out.WriteString(`"` + strings.ReplaceAll(n.Text, `"`, `""`) + "\"\n")
	}
	for _, p := range n.Pairs {
		fmt.Fprintf(out, "%s%s %s\n", indent+"  ", strconv.FormatFloat(p.In, 'g', -1, 64), tabularLabel(p.Out))
	}
	for _, t := range n.Triplets {
		fmt.Fprintf(out, "%s%s %s %s\n", indent+"  ",
			strconv.FormatFloat(t.Min, 'g', -1, 64), strconv.FormatFloat(t.Max, 'g', -1, 64), tabularLabel(t.Out))
	}
	for _, c := range n.Children {
		c.write(out, depth+1)
	}

	if n.Block {
		out.WriteString(indent + "/end " + n.Keyword + "\n")
	}
}

// tabularLabel renders a tabular output value bare when it reads back as
// a single identifier or number token, and as a quoted string otherwise.
func tabularLabel(s string) string {
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) && strconv.FormatFloat(v, 'g', -1, 64) == s {
		return s
	}
	notIdent := func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' }
	if s != "" && strings.IndexFunc(s, notIdent) < 0 && !unicode.IsDigit([]rune(s)[0]) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
