package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinimalPrologue(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo "a demo project"
  /begin HEADER ""
    VERSION "1.0"
  /end HEADER
  /begin MODULE demo_module ""
  /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)

	version, ok := root.Child("ASAP2_VERSION")
	require.True(t, ok, "expected ASAP2_VERSION at the root")
	major, ok := version.Attr("VersionNo")
	require.True(t, ok)
	require.EqualValues(t, 1, major.Uint)

	project, ok := root.Child("PROJECT")
	require.True(t, ok, "expected PROJECT at the root")
	name, ok := project.Attr("Name")
	require.True(t, ok)
	require.Equal(t, "demo", name.Str)

	header, ok := project.Child("HEADER")
	require.True(t, ok)
	_, ok = header.Child("VERSION")
	require.True(t, ok)

	modules := project.ChildrenOf("MODULE")
	require.Len(t, modules, 1)
}

func TestParseMismatchedEndNameFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin HEADER ""
  /end PRJECT
/end PROJECT
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, MismatchedEnd, perr.Kind)
	require.True(t, errors.Is(err, ErrMismatchedEnd))
}

func TestParseEnumValueOutOfRangeFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin CHARACTERISTIC c "" NOT_A_TYPE 0 DEPOSIT 0 0 0 0
    /end CHARACTERISTIC
  /end MODULE
/end PROJECT
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, EnumValueOutOfRange, perr.Kind)
}

func TestParseVariadicAttributeCapturesAllValues(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin CHARACTERISTIC c "" CURVE 0 DEPOSIT 0 conv 0 100
      /begin AXIS_DESCR STD_AXIS in_qty conv 10 0 100
        /begin FIX_AXIS_PAR_LIST 1 2 3 4 5 /end FIX_AXIS_PAR_LIST
      /end AXIS_DESCR
    /end CHARACTERISTIC
  /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)

	project, _ := root.Child("PROJECT")
	module, _ := project.Child("MODULE")
	characteristic, _ := module.Child("CHARACTERISTIC")
	axis, _ := characteristic.Child("AXIS_DESCR")
	list, ok := axis.Child("FIX_AXIS_PAR_LIST")
	require.True(t, ok)
	require.Len(t, list.Variadic, 5)
	require.EqualValues(t, 5, list.Variadic[4].Float)
}

func TestParseIllegalChildFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin HEADER "" /end HEADER
  /end MODULE
/end PROJECT
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, IllegalChild, perr.Kind)
}

func TestParseTextNodeBlockCapturesBody(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin FUNCTION fn "a function"
      /begin ANNOTATION
        /begin ANNOTATION_ORIGIN "tool" /end ANNOTATION_ORIGIN
        /begin ANNOTATION_TEXT "line one" "line two" /end ANNOTATION_TEXT
      /end ANNOTATION
    /end FUNCTION
  /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)

	project, _ := root.Child("PROJECT")
	module, _ := project.Child("MODULE")
	fn, _ := module.Child("FUNCTION")
	annotation, ok := fn.Child("ANNOTATION")
	require.True(t, ok)
	text, ok := annotation.Child("ANNOTATION_TEXT")
	require.True(t, ok)
	require.Len(t, text.Variadic, 2)
	require.Equal(t, "line one", text.Variadic[0].Str)
	require.Equal(t, "line two", text.Variadic[1].Str)
}

func TestParseA2MLBodyIsOpaqueText(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin A2ML
      struct { uint; };
    /end A2ML
  /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)
	project, _ := root.Child("PROJECT")
	module, _ := project.Child("MODULE")
	a2ml, ok := module.Child("A2ML")
	require.True(t, ok)
	require.NotEmpty(t, a2ml.Text)
}

func TestParseMissingProjectFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, MissingRequiredChild, perr.Kind)
}

func TestParseDuplicateSingletonFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin HEADER "" /end HEADER
/end PROJECT
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, DuplicateSingleton, perr.Kind)
}

func TestParseCompuTabPairsBody(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin MODULE m ""
    /begin COMPU_METHOD cm "" TAB_VERB "%6.2" "-"
    /end COMPU_METHOD
    /begin COMPU_VTAB TAB1 "desc" TAB_VERB 2
      0 "OFF"
      1 "ON"
    /end COMPU_VTAB
  /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)
	project, _ := root.Child("PROJECT")
	module, _ := project.Child("MODULE")
	vtab, ok := module.Child("COMPU_VTAB")
	require.True(t, ok)
	require.Len(t, vtab.Pairs, 2)
	require.Equal(t, "OFF", vtab.Pairs[0].Out)
	require.Equal(t, "ON", vtab.Pairs[1].Out)
}

func TestParseEmptyBlockRoundTrips(t *testing.T) {
	// HEADER here has attrs but no child occurrences at all (no VERSION,
	// no PROJECT_NO) -- Children stays nil. Re-emitting it must still
	// wrap it in /begin HEADER .../end HEADER, and re-parsing that text
	// must succeed and reproduce the same structure.
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin HEADER "" /end HEADER
  /begin MODULE m "" /end MODULE
/end PROJECT
`
	root, err := Parse(src)
	require.NoError(t, err)

	out := root.String()
	require.Contains(t, out, "/begin HEADER")
	require.Contains(t, out, "/end HEADER")
	require.Contains(t, out, "/begin MODULE")
	require.Contains(t, out, "/end MODULE")

	reparsed, err := Parse(out)
	require.NoError(t, err, "re-parsing emitted text must succeed")

	project, ok := reparsed.Child("PROJECT")
	require.True(t, ok)
	_, ok = project.Child("HEADER")
	require.True(t, ok)
	_, ok = project.Child("MODULE")
	require.True(t, ok)
}

func TestParseUnknownKeywordFails(t *testing.T) {
	src := `ASAP2_VERSION 1 61
/begin PROJECT demo ""
  /begin NOT_A_REAL_KEYWORD /end NOT_A_REAL_KEYWORD
/end PROJECT
`
	_, err := Parse(src)
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, UnknownKeyword, perr.Kind)
}
