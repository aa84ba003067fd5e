// Package schema is the declarative keyword registry for the A2L
// grammar (component C2): a static table mapping every keyword name to
// its attribute list, legal children, and structural flags. The parser
// consults this table and contains no per-keyword logic of its own.
package schema

import "github.com/cschuler/go-a2l/token"

// TabularKind marks the COMPU_TAB family's trailing value-table body,
// whose arity is read from a preceding numeric attribute rather than
// being a fixed-length tuple.
type TabularKind int

const (
	NoTabular TabularKind = iota
	TabularPairs          // (float in, out value) * NumberValuePairs; out is kept as source text and not checked to be numeric
	TabularTriples        // (float min, float max, string label) * NumberValueTriples
)

// Attr describes one positional attribute slot of a keyword.
type Attr struct {
	Kind     token.AttrKind
	Name     string
	Choices  []string // only meaningful when Kind == token.KindEnum
	Variadic bool     // true only on the last Attr of a descriptor
}

// Descriptor is the registry entry for one A2L keyword.
type Descriptor struct {
	Name     string
	Attrs    []Attr
	Children []string // legal child keyword names, in declaration order

	Block    bool // /begin NAME ... /end NAME vs. a single inline line
	Multiple bool // may this keyword repeat under one parent?
	Required bool // must at least one instance appear under its parent?
	TextNode bool // body is unstructured text, not attrs/children

	TabularArityField string // e.g. "NumberValuePairs"; empty when NoTabular
	TabularKind       TabularKind

	childSet map[string]bool // built by register()
}

// HasChild reports whether name is a legal child keyword.
func (d *Descriptor) HasChild(name string) bool {
	return d.childSet[name]
}

// VariadicAttr returns the trailing variadic attribute, if any.
func (d *Descriptor) VariadicAttr() (Attr, bool) {
	if len(d.Attrs) == 0 {
		return Attr{}, false
	}
	last := d.Attrs[len(d.Attrs)-1]
	if last.Variadic {
		return last, true
	}
	return Attr{}, false
}

// FixedAttrs returns the attribute slots excluding a trailing variadic one.
func (d *Descriptor) FixedAttrs() []Attr {
	if _, ok := d.VariadicAttr(); ok {
		return d.Attrs[:len(d.Attrs)-1]
	}
	return d.Attrs
}

var registry = map[string]*Descriptor{}

// Root is the synthetic document root: its children are the only
// keywords legal at the top level of an A2L file.
var Root = &Descriptor{
	Name:     "<root>",
	Children: []string{"ASAP2_VERSION", "A2ML_VERSION", "PROJECT"},
}

func init() {
	buildChildSet(Root)
}

func register(d *Descriptor) {
	buildChildSet(d)
	registry[d.Name] = d
}

func buildChildSet(d *Descriptor) {
	if len(d.Children) == 0 {
		return
	}
	d.childSet = make(map[string]bool, len(d.Children))
	for _, c := range d.Children {
		d.childSet[c] = true
	}
}

// Lookup is the registry's total function: it returns the descriptor
// for name, or ok=false when name is not a recognized A2L keyword.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns every registered keyword name, for diagnostics and
// registry-totality tests.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func u(name string) Attr      { return Attr{Kind: token.KindUint, Name: name} }
func i(name string) Attr      { return Attr{Kind: token.KindInt, Name: name} }
func ul(name string) Attr     { return Attr{Kind: token.KindUlong, Name: name} }
func lg(name string) Attr     { return Attr{Kind: token.KindLong, Name: name} }
func f(name string) Attr      { return Attr{Kind: token.KindFloat, Name: name} }
func str(name string) Attr    { return Attr{Kind: token.KindString, Name: name} }
func id(name string) Attr     { return Attr{Kind: token.KindIdent, Name: name} }
func datatype(name string) Attr   { return Attr{Kind: token.KindDatatype, Name: name} }
func datasize(name string) Attr   { return Attr{Kind: token.KindDatasize, Name: name} }
func addrtype(name string) Attr   { return Attr{Kind: token.KindAddrtype, Name: name} }
func byteorder(name string) Attr  { return Attr{Kind: token.KindByteorder, Name: name} }
func indexorder(name string) Attr { return Attr{Kind: token.KindIndexorder, Name: name} }

func enum(name string, choices ...string) Attr {
	return Attr{Kind: token.KindEnum, Name: name, Choices: choices}
}

// variadic marks a (presumably already-built) attribute as the trailing
// variable-arity slot.
func variadic(a Attr) Attr {
	a.Variadic = true
	return a
}
