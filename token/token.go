// Package token defines the lexical token kinds and the attribute scalar
// kinds of the A2L (ASAM MCD-2MC) description language.
package token

import "fmt"

// Type represents the kind of a lexical token produced by the lexer.
type Type int

const (
	ILLEGAL Type = iota
	EOF
	COMMENT

	IDENT  // PROJECT, CHARACTERISTIC, my.dotted.ident
	INT    // 1234, -17
	HEX    // 0x1A2B
	FLOAT  // 1.0, 1e10, -3.5e-2
	STRING // "quoted text"

	BEGIN          // /begin
	END            // /end
	INCLUDE        // /include
	ASAP2_VERSION_ // ASAP2_VERSION, recognized only at file start
)

var names = map[Type]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	COMMENT:        "COMMENT",
	IDENT:          "IDENT",
	INT:            "INT",
	HEX:            "HEX",
	FLOAT:          "FLOAT",
	STRING:         "STRING",
	BEGIN:          "/begin",
	END:            "/end",
	INCLUDE:        "/include",
	ASAP2_VERSION_: "ASAP2_VERSION",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is one lexical unit with its source position.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

// Position locates a point in a source file.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// AttrKind is the sum type of scalar attribute types an A2L keyword
// descriptor may declare for one of its attribute slots. Re-expressed
// per the source's singleton-type-tag pattern as a tagged value stored
// by value inside descriptors, rather than as a class identity.
type AttrKind int

const (
	KindUint AttrKind = iota
	KindInt
	KindUlong
	KindLong
	KindFloat
	KindString
	KindIdent
	KindEnum
	KindDatatype
	KindDatasize
	KindAddrtype
	KindByteorder
	KindIndexorder
)

func (k AttrKind) String() string {
	switch k {
	case KindUint:
		return "Uint"
	case KindInt:
		return "Int"
	case KindUlong:
		return "Ulong"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindIdent:
		return "Ident"
	case KindEnum:
		return "Enum"
	case KindDatatype:
		return "Datatype"
	case KindDatasize:
		return "Datasize"
	case KindAddrtype:
		return "Addrtype"
	case KindByteorder:
		return "Byteorder"
	case KindIndexorder:
		return "Indexorder"
	default:
		return "AttrKind(?)"
	}
}

// Predefined choice sets for the Enum specializations named in the
// standard. Stored once and referenced by the registry entries that
// use these kinds, rather than repeated per descriptor.
var (
	DatatypeValues   = []string{"UBYTE", "SBYTE", "UWORD", "SWORD", "ULONG", "SLONG", "A_UINT64", "A_INT64", "FLOAT32_IEEE", "FLOAT64_IEEE"}
	DatasizeValues   = []string{"BYTE", "WORD", "LONG"}
	AddrtypeValues   = []string{"PBYTE", "PWORD", "PLONG", "DIRECT"}
	ByteorderValues  = []string{"LITTLE_ENDIAN", "BIG_ENDIAN", "MSB_LAST", "MSB_FIRST"}
	IndexorderValues = []string{"INDEX_INCR", "INDEX_DECR"}
)

// Choices returns the predefined choice set for the specialized Enum
// kinds, or nil for KindEnum (whose choices live on the descriptor
// itself) and non-enum kinds.
func (k AttrKind) Choices() []string {
	switch k {
	case KindDatatype:
		return DatatypeValues
	case KindDatasize:
		return DatasizeValues
	case KindAddrtype:
		return AddrtypeValues
	case KindByteorder:
		return ByteorderValues
	case KindIndexorder:
		return IndexorderValues
	default:
		return nil
	}
}

// IsEnumLike reports whether the kind is constrained to a choice set,
// either via the descriptor's own Choices or via Choices() above.
func (k AttrKind) IsEnumLike() bool {
	switch k {
	case KindEnum, KindDatatype, KindDatasize, KindAddrtype, KindByteorder, KindIndexorder:
		return true
	default:
		return false
	}
}

// IsIntegral reports whether the kind is one of the four bounded
// integer scalar types, each with its own legal range.
func (k AttrKind) IsIntegral() bool {
	switch k {
	case KindUint, KindInt, KindUlong, KindLong:
		return true
	default:
		return false
	}
}

// Range returns the inclusive legal range for an integral kind.
func (k AttrKind) Range() (min, max int64) {
	switch k {
	case KindUint:
		return 0, 0xFFFF
	case KindInt:
		return -0x8000, 0x7FFF
	case KindUlong:
		return 0, 0xFFFFFFFF
	case KindLong:
		return -0x80000000, 0x7FFFFFFF
	default:
		return 0, 0
	}
}
