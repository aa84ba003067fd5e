// Package parser implements a recursive-descent parser for A2L
// (ASAM MCD-2MC) description files, directed by the declarative
// keyword table in package schema rather than a hand-written parse
// function per keyword.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cschuler/go-a2l/ast"
	"github.com/cschuler/go-a2l/lexer"
	"github.com/cschuler/go-a2l/schema"
	"github.com/cschuler/go-a2l/token"
)

type lexFrame struct {
	l    *lexer.Lexer
	name string // resolved include path; empty for the original input
}

// Parser turns a token stream into an *ast.Node tree. A Parser is not
// safe for concurrent use; give each goroutine its own.
type Parser struct {
	frames []*lexFrame

	curToken  token.Token
	peekToken token.Token

	resolver     IncludeResolver
	includeStack []string
	breadcrumb   []string
}

// New creates a Parser over l. /include directives fail to resolve,
// since there is no filesystem context to resolve them against; use
// NewWithResolver or ParseFile for input that may include other files.
func New(l *lexer.Lexer) *Parser {
	return NewWithResolver(l, nopIncludeResolver{})
}

// NewWithResolver creates a Parser over l that resolves /include
// directives through r.
func NewWithResolver(l *lexer.Lexer, r IncludeResolver) *Parser {
	p := &Parser{
		frames:   []*lexFrame{{l: l}},
		resolver: r,
	}
	p.curToken = p.advanceRaw()
	p.peekToken = p.advanceRaw()
	return p
}

// Parse parses A2L source held entirely in memory. /include
// directives in input cannot be resolved.
func Parse(input string) (*ast.Node, error) {
	return New(lexer.New(input)).ParseRoot()
}

func (p *Parser) advanceRaw() token.Token {
	for {
		if len(p.frames) == 0 {
			return token.Token{Type: token.EOF}
		}
		top := p.frames[len(p.frames)-1]
		tok := top.l.NextToken()
		if tok.Type == token.COMMENT {
			continue
		}
		if tok.Type == token.EOF && len(p.frames) > 1 {
			p.frames = p.frames[:len(p.frames)-1]
			if top.name != "" {
				if n := len(p.includeStack); n > 0 && p.includeStack[n-1] == top.name {
					p.includeStack = p.includeStack[:n-1]
				}
			}
			continue
		}
		return tok
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.advanceRaw()
}

func (p *Parser) pos(tok token.Token) token.Position {
	return token.Position{Line: tok.Line, Column: tok.Column}
}

// ParseRoot parses the synthetic root: an optional ASAP2_VERSION, an
// optional A2ML_VERSION, and exactly one PROJECT block.
func (p *Parser) ParseRoot() (*ast.Node, error) {
	root := &ast.Node{Keyword: ast.RootKeyword}
	seen := map[string]bool{}

	for p.curToken.Type != token.EOF {
		if p.curToken.Type == token.INCLUDE {
			if err := p.consumeInclude(); err != nil {
				return nil, err
			}
			continue
		}
		child, err := p.parseOne(schema.Root)
		if err != nil {
			return nil, err
		}
		childDesc, _ := schema.Lookup(child.Keyword)
		if err := p.checkDuplicate(seen, childDesc, child); err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}

	if err := p.checkRequiredChildren(schema.Root, root); err != nil {
		return nil, err
	}
	return root, nil
}

func (p *Parser) checkDuplicate(seen map[string]bool, desc *schema.Descriptor, node *ast.Node) error {
	if desc == nil || desc.Multiple {
		return nil
	}
	if seen[node.Keyword] {
		return p.errorf(DuplicateSingleton, node.Pos, "%s may appear at most once here", node.Keyword)
	}
	seen[node.Keyword] = true
	return nil
}

func (p *Parser) checkRequiredChildren(desc *schema.Descriptor, node *ast.Node) error {
	for _, name := range desc.Children {
		childDesc, ok := schema.Lookup(name)
		if !ok || !childDesc.Required {
			continue
		}
		if _, found := node.Child(name); !found {
			return p.errorf(MissingRequiredChild, node.Pos, "missing required child %s", name)
		}
	}
	return nil
}

// parseOne parses a single block or inline keyword that is a legal
// child of parent, starting at the current token.
func (p *Parser) parseOne(parent *schema.Descriptor) (*ast.Node, error) {
	switch p.curToken.Type {
	case token.BEGIN:
		return p.parseBlock(parent)
	case token.IDENT, token.ASAP2_VERSION_:
		return p.parseInline(parent)
	case token.ILLEGAL:
		return nil, p.errorf(LexError, p.pos(p.curToken), "illegal input %q", p.curToken.Literal)
	default:
		return nil, p.unexpected(p.pos(p.curToken), "/begin or a keyword", describe(p.curToken))
	}
}

func (p *Parser) parseInline(parent *schema.Descriptor) (*ast.Node, error) {
	nameTok := p.curToken
	name := nameTok.Literal
	desc, ok := schema.Lookup(name)
	if !ok {
		return nil, p.errorf(UnknownKeyword, p.pos(nameTok), "unknown keyword %s", name)
	}
	if !parent.HasChild(name) {
		return nil, p.errorf(IllegalChild, p.pos(nameTok), "%s is not a legal child of %s", name, parent.Name)
	}
	if desc.Block {
		return nil, p.unexpected(p.pos(nameTok), "/begin "+name, name)
	}
	p.nextToken()

	node := &ast.Node{Keyword: name, Pos: p.pos(nameTok)}
	if err := p.consumeAttrs(desc, node); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseBlock(parent *schema.Descriptor) (*ast.Node, error) {
	beginPos := p.pos(p.curToken)
	p.nextToken() // consume /begin

	if p.curToken.Type != token.IDENT && p.curToken.Type != token.ASAP2_VERSION_ {
		return nil, p.unexpected(p.pos(p.curToken), "keyword name", describe(p.curToken))
	}
	name := p.curToken.Literal
	desc, ok := schema.Lookup(name)
	if !ok {
		return nil, p.errorf(UnknownKeyword, p.pos(p.curToken), "unknown keyword %s", name)
	}
	if !parent.HasChild(name) {
		return nil, p.errorf(IllegalChild, p.pos(p.curToken), "%s is not a legal child of %s", name, parent.Name)
	}
	p.nextToken() // consume the name

	p.breadcrumb = append(p.breadcrumb, name)
	defer func() { p.breadcrumb = p.breadcrumb[:len(p.breadcrumb)-1] }()

	node := &ast.Node{Keyword: name, Pos: beginPos, Block: true}
	if err := p.consumeAttrs(desc, node); err != nil {
		return nil, err
	}

	if desc.TabularKind != schema.NoTabular {
		if err := p.consumeTabularBody(desc, node); err != nil {
			return nil, err
		}
	}

	switch {
	case desc.TextNode && len(desc.Attrs) == 0:
		node.Text = p.consumeTextBody(name)
	case len(desc.Children) > 0:
		seen := map[string]bool{}
		for p.curToken.Type != token.END {
			if p.curToken.Type == token.EOF {
				return nil, p.unexpected(p.pos(p.curToken), "/end "+name, "EOF")
			}
			if p.curToken.Type == token.INCLUDE {
				if err := p.consumeInclude(); err != nil {
					return nil, err
				}
				continue
			}
			child, err := p.parseOne(desc)
			if err != nil {
				return nil, err
			}
			childDesc, _ := schema.Lookup(child.Keyword)
			if err := p.checkDuplicate(seen, childDesc, child); err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		if err := p.checkRequiredChildren(desc, node); err != nil {
			return nil, err
		}
	}

	if p.curToken.Type != token.END {
		return nil, p.unexpected(p.pos(p.curToken), "/end "+name, describe(p.curToken))
	}
	endPos := p.pos(p.curToken)
	p.nextToken() // consume /end

	if p.curToken.Type != token.IDENT && p.curToken.Type != token.ASAP2_VERSION_ {
		return nil, p.unexpected(endPos, name, describe(p.curToken))
	}
	if p.curToken.Literal != name {
		return nil, p.errorf(MismatchedEnd, endPos, "expected /end %s, got /end %s", name, p.curToken.Literal)
	}
	p.nextToken() // consume the matching name

	return node, nil
}

func (p *Parser) consumeAttrs(desc *schema.Descriptor, node *ast.Node) error {
	for _, a := range desc.FixedAttrs() {
		if !isAttrStart(p.curToken) {
			return p.errorf(MissingRequiredAttribute, p.pos(p.curToken), "missing required attribute %s (%s)", a.Name, a.Kind)
		}
		val, err := p.parseAttrValue(a)
		if err != nil {
			return err
		}
		node.Attrs = append(node.Attrs, val)
	}
	if va, ok := desc.VariadicAttr(); ok {
		for isAttrStart(p.curToken) {
			val, err := p.parseAttrValue(va)
			if err != nil {
				return err
			}
			node.Variadic = append(node.Variadic, val)
		}
	}
	return nil
}

func isAttrStart(tok token.Token) bool {
	switch tok.Type {
	case token.INT, token.HEX, token.FLOAT, token.STRING, token.IDENT, token.ASAP2_VERSION_:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAttrValue(a schema.Attr) (ast.Attr, error) {
	tok := p.curToken
	pos := p.pos(tok)
	out := ast.Attr{Name: a.Name, Kind: a.Kind}

	switch {
	case a.Kind.IsIntegral():
		if tok.Type != token.INT && tok.Type != token.HEX {
			return out, p.typeMismatch(pos, a, tok)
		}
		v, err := parseIntLiteral(tok)
		if err != nil {
			return out, p.errorf(AttributeTypeMismatch, pos, "malformed numeral %q: %v", tok.Literal, err)
		}
		min, max := a.Kind.Range()
		if v < min || v > max {
			return out, p.errorf(IntegerOutOfRange, pos, "%s: %d is outside [%d, %d]", a.Name, v, min, max)
		}
		switch a.Kind {
		case token.KindUint:
			out.Uint = uint16(v)
		case token.KindInt:
			out.Int = int16(v)
		case token.KindUlong:
			out.Ulong = uint32(v)
		case token.KindLong:
			out.Long = int32(v)
		}
		p.nextToken()

	case a.Kind == token.KindFloat:
		if tok.Type != token.FLOAT && tok.Type != token.INT {
			return out, p.typeMismatch(pos, a, tok)
		}
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return out, p.errorf(AttributeTypeMismatch, pos, "malformed float %q: %v", tok.Literal, err)
		}
		out.Float = v
		p.nextToken()

	case a.Kind == token.KindString:
		if tok.Type != token.STRING {
			return out, p.typeMismatch(pos, a, tok)
		}
		out.Str = tok.Literal
		p.nextToken()

	case a.Kind == token.KindIdent:
		if tok.Type != token.IDENT && tok.Type != token.ASAP2_VERSION_ {
			return out, p.typeMismatch(pos, a, tok)
		}
		out.Str = tok.Literal
		p.nextToken()

	case a.Kind.IsEnumLike():
		if tok.Type != token.IDENT {
			return out, p.typeMismatch(pos, a, tok)
		}
		choices := a.Choices
		if len(choices) == 0 {
			choices = a.Kind.Choices()
		}
		if !contains(choices, tok.Literal) {
			return out, p.errorf(EnumValueOutOfRange, pos, "%s: %q is not one of %s", a.Name, tok.Literal, strings.Join(choices, "|"))
		}
		out.Str = tok.Literal
		p.nextToken()

	default:
		return out, fmt.Errorf("parser: unhandled attribute kind %s", a.Kind)
	}

	return out, nil
}

func (p *Parser) typeMismatch(pos token.Position, a schema.Attr, tok token.Token) *Error {
	return &Error{
		Kind:       AttributeTypeMismatch,
		Pos:        pos,
		Breadcrumb: append([]string(nil), p.breadcrumb...),
		Expected:   a.Kind.String(),
		Actual:     describe(tok),
	}
}

func contains(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}

func parseIntLiteral(tok token.Token) (int64, error) {
	lit := tok.Literal
	if tok.Type == token.HEX {
		neg := strings.HasPrefix(lit, "-")
		body := strings.TrimPrefix(lit, "-")
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0x"), "0X")
		v, err := strconv.ParseUint(body, 16, 64)
		if err != nil {
			return 0, err
		}
		if neg {
			return -int64(v), nil
		}
		return int64(v), nil
	}
	return strconv.ParseInt(lit, 10, 64)
}

// consumeTabularBody reads the fixed-count body of a COMPU_TAB,
// COMPU_VTAB or COMPU_VTAB_RANGE, whose element count was given by one
// of the keyword's own fixed attributes.
func (p *Parser) consumeTabularBody(desc *schema.Descriptor, node *ast.Node) error {
	arity, ok := node.Attr(desc.TabularArityField)
	if !ok {
		return fmt.Errorf("parser: %s has no %s attribute to size its tabular body", desc.Name, desc.TabularArityField)
	}
	n := int(arity.Uint)

	for i := 0; i < n; i++ {
		switch desc.TabularKind {
		case schema.TabularPairs:
			in, err := p.consumeTabularNumber()
			if err != nil {
				return err
			}
			out, err := p.consumeTabularLabel()
			if err != nil {
				return err
			}
			node.Pairs = append(node.Pairs, ast.CompuPair{In: in, Out: out})
		case schema.TabularTriples:
			min, err := p.consumeTabularNumber()
			if err != nil {
				return err
			}
			max, err := p.consumeTabularNumber()
			if err != nil {
				return err
			}
			out, err := p.consumeTabularLabel()
			if err != nil {
				return err
			}
			node.Triplets = append(node.Triplets, ast.CompuTriplet{Min: min, Max: max, Out: out})
		}
	}
	return nil
}

func (p *Parser) consumeTabularNumber() (float64, error) {
	tok := p.curToken
	if tok.Type != token.INT && tok.Type != token.FLOAT && tok.Type != token.HEX {
		return 0, p.unexpected(p.pos(tok), "a numeral", describe(tok))
	}
	var v float64
	var err error
	if tok.Type == token.HEX {
		iv, ierr := parseIntLiteral(tok)
		v, err = float64(iv), ierr
	} else {
		v, err = strconv.ParseFloat(tok.Literal, 64)
	}
	if err != nil {
		return 0, p.errorf(AttributeTypeMismatch, p.pos(tok), "malformed numeral %q: %v", tok.Literal, err)
	}
	p.nextToken()
	return v, nil
}

func (p *Parser) consumeTabularLabel() (string, error) {
	tok := p.curToken
	if tok.Type != token.IDENT && tok.Type != token.STRING && tok.Type != token.INT && tok.Type != token.FLOAT {
		return "", p.unexpected(p.pos(tok), "a tabular output value", describe(tok))
	}
	p.nextToken()
	return tok.Literal, nil
}

// consumeTextBody gathers tokens verbatim until the matching /end
// endName, without validating them against the schema. It serves
// text-node keywords with no attributes (A2ML): their body is opaque,
// since the grammar it carries is not the A2L grammar, so nothing past
// the keyword name is checked. ANNOTATION_TEXT declares a variadic
// string attribute and is parsed through consumeAttrs instead.
func (p *Parser) consumeTextBody(endName string) string {
	var parts []string
	for {
		if p.curToken.Type == token.EOF {
			break
		}
		if p.curToken.Type == token.END && p.peekToken.Literal == endName &&
			(p.peekToken.Type == token.IDENT || p.peekToken.Type == token.ASAP2_VERSION_) {
			break
		}
		parts = append(parts, p.curToken.Literal)
		p.nextToken()
	}
	return strings.Join(parts, " ")
}

func (p *Parser) consumeInclude() error {
	pos := p.pos(p.curToken)
	if p.peekToken.Type != token.STRING && p.peekToken.Type != token.IDENT {
		return p.unexpected(p.pos(p.peekToken), "include filename", describe(p.peekToken))
	}
	name := p.peekToken.Literal

	content, resolvedName, err := p.resolver.Resolve(name)
	if err != nil {
		return fmt.Errorf("parser: resolving /include %q at %s: %w", name, pos, err)
	}
	for _, s := range p.includeStack {
		if s == resolvedName {
			return p.errorf(IncludeCycle, pos, "include cycle through %s", resolvedName)
		}
	}
	p.includeStack = append(p.includeStack, resolvedName)
	p.frames = append(p.frames, &lexFrame{l: lexer.New(content), name: resolvedName})

	p.curToken = p.advanceRaw()
	p.peekToken = p.advanceRaw()
	return nil
}

func describe(tok token.Token) string {
	if tok.Literal == "" {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
}
