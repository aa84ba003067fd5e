package lexer

import (
	"testing"

	"github.com/cschuler/go-a2l/token"
)

func TestPunctuationKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"/begin", token.BEGIN},
		{"/end", token.END},
		{"/include", token.INCLUDE},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expected {
			t.Errorf("input %q: expected token type %v, got %v (literal: %q)",
				tt.input, tt.expected, tok.Type, tok.Literal)
		}
	}
}

func TestBeginIsNotSwallowedByIdent(t *testing.T) {
	// "begin" (no slash) is a legal bare identifier, but "/begin" must
	// never be tokenized as IDENT "begin" preceded by an ILLEGAL "/".
	l := New("/begin PROJECT")
	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.BEGIN, "/begin"},
		{token.IDENT, "PROJECT"},
		{token.EOF, ""},
	}
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ || tok.Literal != e.literal {
			t.Errorf("token %d: expected (%v,%q), got (%v,%q)", i, e.typ, e.literal, tok.Type, tok.Literal)
		}
	}
}

func TestASAP2VersionOnlyAtFileStart(t *testing.T) {
	l := New("ASAP2_VERSION 1 71")
	tok := l.NextToken()
	if tok.Type != token.ASAP2_VERSION_ {
		t.Fatalf("expected ASAP2_VERSION token, got %v", tok.Type)
	}

	l2 := New("/begin PROJECT ASAP2_VERSION /end PROJECT")
	var sawIdent bool
	for {
		tok := l2.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Literal == "ASAP2_VERSION" {
			if tok.Type != token.IDENT {
				t.Errorf("ASAP2_VERSION mid-file should lex as IDENT, got %v", tok.Type)
			}
			sawIdent = true
		}
	}
	if !sawIdent {
		t.Fatal("never saw the ASAP2_VERSION identifier")
	}
}

func TestStringEscaping(t *testing.T) {
	l := New(`"a ""quoted"" word"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	want := `a "quoted" word`
	if tok.Literal != want {
		t.Errorf("expected %q, got %q", want, tok.Literal)
	}
}

func TestStringSpansLines(t *testing.T) {
	l := New("\"line one\nline two\"")
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	want := "line one\nline two"
	if tok.Literal != want {
		t.Errorf("expected %q, got %q", want, tok.Literal)
	}
}

func TestNumberDisambiguation(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"17", token.INT},
		{"-17", token.INT},
		{"0x1A", token.HEX},
		{"1.0", token.FLOAT},
		{"1e10", token.FLOAT},
		{"-3.5e-2", token.FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expected {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, tok.Type)
		}
	}
}

func TestIdentDottedSegments(t *testing.T) {
	l := New("Vehicle.Speed.Raw")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "Vehicle.Speed.Raw" {
		t.Errorf("expected IDENT %q, got (%v,%q)", "Vehicle.Speed.Raw", tok.Type, tok.Literal)
	}
}

func TestLineAndBlockComments(t *testing.T) {
	l := New("IDENT1 // trailing comment\n/* block\ncomment */ IDENT2")
	tok := l.NextToken()
	if tok.Literal != "IDENT1" {
		t.Fatalf("expected IDENT1 first, got %q", tok.Literal)
	}
	tok = l.NextToken()
	if tok.Literal != "IDENT2" {
		t.Fatalf("expected comments discarded and IDENT2 next, got %q (%v)", tok.Literal, tok.Type)
	}
}

func TestNestedBlockComments(t *testing.T) {
	l := New("/* outer /* inner */ still-in-comment */ TAIL")
	tok := l.NextToken()
	if tok.Literal != "TAIL" {
		t.Errorf("expected nested comment fully consumed, got %q", tok.Literal)
	}
}

func TestMinimalPrologueTokenStream(t *testing.T) {
	toks := Tokenize("ASAP2_VERSION 1 60\n/begin PROJECT P \"\" /end PROJECT")
	var kinds []token.Type
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	want := []token.Type{
		token.ASAP2_VERSION_, token.INT, token.INT,
		token.BEGIN, token.IDENT, token.IDENT, token.STRING, token.END, token.IDENT,
		token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("#")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL, got %v", tok.Type)
	}
}
