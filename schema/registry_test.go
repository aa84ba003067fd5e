package schema

import "testing"

func TestLookupKnownKeyword(t *testing.T) {
	d, ok := Lookup("CHARACTERISTIC")
	if !ok {
		t.Fatal("expected CHARACTERISTIC to be registered")
	}
	if !d.Block || !d.Multiple {
		t.Errorf("CHARACTERISTIC should be block=true multiple=true, got block=%v multiple=%v", d.Block, d.Multiple)
	}
	if !d.HasChild("AXIS_DESCR") {
		t.Error("CHARACTERISTIC should permit an AXIS_DESCR child")
	}
	if d.HasChild("MEASUREMENT") {
		t.Error("CHARACTERISTIC should not permit a MEASUREMENT child")
	}
}

func TestLookupUnknownKeyword(t *testing.T) {
	if _, ok := Lookup("NOT_A_KEYWORD"); ok {
		t.Error("expected NOT_A_KEYWORD to be absent from the registry")
	}
}

func TestEnumChoiceSetForCharacteristicType(t *testing.T) {
	d, _ := Lookup("CHARACTERISTIC")
	var typeAttr Attr
	found := false
	for _, a := range d.Attrs {
		if a.Name == "Type" {
			typeAttr = a
			found = true
		}
	}
	if !found {
		t.Fatal("CHARACTERISTIC has no Type attribute")
	}
	want := []string{"ASCII", "CURVE", "MAP", "CUBOID", "CUBE_4", "CUBE_5", "VAL_BLK", "VALUE"}
	if len(typeAttr.Choices) != len(want) {
		t.Fatalf("expected %d choices, got %d", len(want), len(typeAttr.Choices))
	}
	for i := range want {
		if typeAttr.Choices[i] != want[i] {
			t.Errorf("choice %d: expected %q, got %q", i, want[i], typeAttr.Choices[i])
		}
	}
}

func TestVariadicAttributeIsLastAndFlagged(t *testing.T) {
	d, _ := Lookup("FIX_AXIS_PAR_LIST")
	va, ok := d.VariadicAttr()
	if !ok {
		t.Fatal("FIX_AXIS_PAR_LIST should declare a variadic attribute")
	}
	if va.Name != "AxisPts_Value" {
		t.Errorf("expected variadic attribute AxisPts_Value, got %s", va.Name)
	}
	if len(d.FixedAttrs()) != 0 {
		t.Errorf("expected zero fixed attrs, got %d", len(d.FixedAttrs()))
	}
}

func TestCompuTabDeclaresTabularBody(t *testing.T) {
	d, _ := Lookup("COMPU_TAB")
	if d.TabularKind != TabularPairs || d.TabularArityField != "NumberValuePairs" {
		t.Errorf("COMPU_TAB should declare a pairs-tabular body keyed by NumberValuePairs, got kind=%v field=%q",
			d.TabularKind, d.TabularArityField)
	}
	vtab, _ := Lookup("COMPU_VTAB_RANGE")
	if vtab.TabularKind != TabularTriples || vtab.TabularArityField != "NumberValueTriples" {
		t.Errorf("COMPU_VTAB_RANGE should declare a triples-tabular body, got kind=%v field=%q",
			vtab.TabularKind, vtab.TabularArityField)
	}
}

func TestRootChildrenSet(t *testing.T) {
	want := map[string]bool{"ASAP2_VERSION": true, "A2ML_VERSION": true, "PROJECT": true}
	if len(Root.Children) != len(want) {
		t.Fatalf("expected %d root children, got %d", len(want), len(Root.Children))
	}
	for _, c := range Root.Children {
		if !want[c] {
			t.Errorf("unexpected root child %q", c)
		}
		if !Root.HasChild(c) {
			t.Errorf("Root.HasChild(%q) should be true", c)
		}
	}
}

func TestRegistryTotalityCoversCoreAndExtendedVocabulary(t *testing.T) {
	// A representative sample spanning every SPEC_FULL.md registry file:
	// the core grammar, record layout positional fields, the CCP/XCP
	// IF_DATA sub-grammar, and the variant-coding family.
	mustExist := []string{
		"PROJECT", "HEADER", "MODULE", "MOD_COMMON", "MOD_PAR",
		"CHARACTERISTIC", "AXIS_DESCR", "COMPU_METHOD", "COMPU_TAB", "COMPU_VTAB", "COMPU_VTAB_RANGE",
		"MEASUREMENT", "FUNCTION", "GROUP", "FRAME", "UNIT",
		"RECORD_LAYOUT", "AXIS_PTS_X", "FNC_VALUES", "RIP_ADDR_W",
		"IF_DATA", "SOURCE", "QP_BLOB", "TP_BLOB", "RASTER",
		"VARIANT_CODING", "VAR_CHARACTERISTIC", "USER_RIGHTS",
		"ANNOTATION_TEXT", "A2ML",
	}
	for _, name := range mustExist {
		if _, ok := Lookup(name); !ok {
			t.Errorf("expected keyword %q to be registered", name)
		}
	}
	if len(Names()) < len(mustExist) {
		t.Errorf("expected registry to carry at least %d entries, has %d", len(mustExist), len(Names()))
	}
}

func TestEveryDescriptorAtMostOneTrailingVariadicAttr(t *testing.T) {
	for _, name := range Names() {
		d, _ := Lookup(name)
		for idx, a := range d.Attrs {
			if a.Variadic && idx != len(d.Attrs)-1 {
				t.Errorf("%s: variadic attribute %q is not last", name, a.Name)
			}
		}
	}
}

func TestTextNodeKeywordsHaveNoStructuredChildren(t *testing.T) {
	for _, name := range []string{"ANNOTATION_TEXT", "A2ML"} {
		d, ok := Lookup(name)
		if !ok {
			t.Fatalf("expected %s registered", name)
		}
		if !d.TextNode {
			t.Errorf("%s should be a text node", name)
		}
		if len(d.Children) != 0 {
			t.Errorf("%s should declare no structured children, got %v", name, d.Children)
		}
	}
}
