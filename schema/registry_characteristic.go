package schema

// CHARACTERISTIC, its axis descriptions, and the conversion-method
// (COMPU_*) family.
func init() {
	register(&Descriptor{Name: "CHARACTERISTIC", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "AXIS_DESCR", "BIT_MASK", "BYTE_ORDER", "CALIBRATION_ACCESS",
			"COMPARISON_QUANTITY", "DEPENDENT_CHARACTERISTIC", "DISCRETE", "DISPLAY_IDENTIFIER",
			"ECU_ADDRESS_EXTENSION", "EXTENDED_LIMITS", "FORMAT", "FUNCTION_LIST", "GUARD_RAILS",
			"IF_DATA", "MAP_LIST", "MATRIX_DIM", "MAX_REFRESH", "NUMBER", "PHYS_UNIT", "READ_ONLY",
			"REF_MEMORY_SEGMENT", "STEP_SIZE", "SYMBOL_LINK", "VIRTUAL_CHARACTERISTIC"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"),
			enum("Type", "ASCII", "CURVE", "MAP", "CUBOID", "CUBE_4", "CUBE_5", "VAL_BLK", "VALUE"),
			ul("Address"), id("Deposit"), f("MaxDiff"), id("Conversion"),
			f("LowerLimit"), f("UpperLimit"),
		}})

	register(&Descriptor{Name: "AXIS_DESCR", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "AXIS_PTS_REF", "BYTE_ORDER", "CURVE_AXIS_REF", "DEPOSIT",
			"EXTENDED_LIMITS", "FIX_AXIS_PAR", "FIX_AXIS_PAR_DIST", "FIX_AXIS_PAR_LIST",
			"FORMAT", "MAX_GRAD", "MONOTONY", "PHYS_UNIT", "READ_ONLY", "STEP_SIZE"},
		Attrs: []Attr{
			enum("Attribute", "CURVE_AXIS", "COM_AXIS", "FIX_AXIS", "RES_AXIS", "STD_AXIS"),
			id("InputQuantity"), id("Conversion"), u("MaxAxisPoints"),
			f("LowerLimit"), f("UpperLimit"),
		}})

	register(&Descriptor{Name: "AXIS_PTS", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "BYTE_ORDER", "CALIBRATION_ACCESS", "DEPOSIT", "DISPLAY_IDENTIFIER",
			"ECU_ADDRESS_EXTENSION", "EXTENDED_LIMITS", "FORMAT", "FUNCTION_LIST", "GUARD_RAILS",
			"IF_DATA", "MONOTONY", "PHYS_UNIT", "READ_ONLY", "REF_MEMORY_SEGMENT", "STEP_SIZE", "SYMBOL_LINK"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"), ul("Address"), id("InputQuantity"), id("Deposit"),
			f("MaxDiff"), id("Conversion"), u("MaxAxisPoints"), f("LowerLimit"), f("UpperLimit"),
		}})
	register(&Descriptor{Name: "AXIS_PTS_REF", Attrs: []Attr{id("AxisPoints")}})
	register(&Descriptor{Name: "CURVE_AXIS_REF", Attrs: []Attr{id("CurveAxis")}})

	register(&Descriptor{Name: "FIX_AXIS_PAR", Attrs: []Attr{i("Offset"), i("Shift"), u("Numberapo")}})
	register(&Descriptor{Name: "FIX_AXIS_PAR_DIST", Attrs: []Attr{i("Offset"), i("Distance"), u("Numberapo")}})
	register(&Descriptor{Name: "FIX_AXIS_PAR_LIST", Block: true, Attrs: []Attr{variadic(f("AxisPts_Value"))}})

	register(&Descriptor{Name: "COMPU_METHOD", Block: true, Multiple: true,
		Children: []string{"COEFFS", "COEFFS_LINEAR", "COMPU_TAB_REF", "FORMULA", "REF_UNIT", "STATUS_STRING_REF"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"),
			enum("ConversionType", "IDENTICAL", "FORM", "LINEAR", "RAT_FUNC", "TAB_INTP", "TAB_NOINTP", "TAB_VERB"),
			str("Format"), str("Unit"),
		}})
	register(&Descriptor{Name: "COEFFS", Attrs: []Attr{f("a"), f("b"), f("c"), f("d"), f("e"), f("f")}})
	register(&Descriptor{Name: "COEFFS_LINEAR", Attrs: []Attr{f("a"), f("b")}})
	register(&Descriptor{Name: "FORMULA", Block: true, Children: []string{"FORMULA_INV"}, Attrs: []Attr{str("F_x")}})
	register(&Descriptor{Name: "FORMULA_INV", Attrs: []Attr{str("G_x")}})
	register(&Descriptor{Name: "REF_UNIT", Attrs: []Attr{id("Unit")}})
	register(&Descriptor{Name: "STATUS_STRING_REF", Attrs: []Attr{id("ConversionTable")}})

	register(&Descriptor{Name: "COMPU_TAB", Block: true, Multiple: true,
		Children:          []string{"DEFAULT_VALUE", "DEFAULT_VALUE_NUMERIC"},
		TabularArityField: "NumberValuePairs",
		TabularKind:       TabularPairs,
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"),
			enum("ConversionType", "TAB_INTP", "TAB_NOINTP"),
			u("NumberValuePairs"),
		}})
	register(&Descriptor{Name: "COMPU_TAB_REF", Attrs: []Attr{id("ConversionTable")}})
	register(&Descriptor{Name: "COMPU_VTAB", Block: true, Multiple: true,
		Children:          []string{"DEFAULT_VALUE"},
		TabularArityField: "NumberValuePairs",
		TabularKind:       TabularPairs,
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"),
			enum("ConversionType", "TAB_VERB"),
			u("NumberValuePairs"),
		}})
	register(&Descriptor{Name: "COMPU_VTAB_RANGE", Block: true, Multiple: true,
		Children:          []string{"DEFAULT_VALUE"},
		TabularArityField: "NumberValueTriples",
		TabularKind:       TabularTriples,
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"), u("NumberValueTriples"),
		}})
	register(&Descriptor{Name: "DEFAULT_VALUE", Attrs: []Attr{str("Display_String")}})
	register(&Descriptor{Name: "DEFAULT_VALUE_NUMERIC", Attrs: []Attr{f("Display_Value")}})
}
