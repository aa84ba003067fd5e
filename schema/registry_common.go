package schema

// Leaf and small shared keywords referenced from many parents'
// children sets (CHARACTERISTIC, MEASUREMENT, AXIS_PTS, AXIS_DESCR,
// RECORD_LAYOUT, MOD_COMMON, ...).
func init() {
	register(&Descriptor{Name: "ANNOTATION", Block: true, Multiple: true,
		Children: []string{"ANNOTATION_LABEL", "ANNOTATION_ORIGIN", "ANNOTATION_TEXT"}})
	register(&Descriptor{Name: "ANNOTATION_LABEL", Attrs: []Attr{str("Label")}})
	register(&Descriptor{Name: "ANNOTATION_ORIGIN", Attrs: []Attr{str("Origin")}})
	register(&Descriptor{Name: "ANNOTATION_TEXT", Block: true, TextNode: true,
		Attrs: []Attr{variadic(str("Text"))}})

	register(&Descriptor{Name: "ARRAY_SIZE", Attrs: []Attr{u("Number")}})
	register(&Descriptor{Name: "BIT_MASK", Attrs: []Attr{ul("Mask")}})
	register(&Descriptor{Name: "BIT_OPERATION", Block: true,
		Children: []string{"LEFT_SHIFT", "RIGHT_SHIFT", "SIGN_EXTEND"}})
	register(&Descriptor{Name: "LEFT_SHIFT", Attrs: []Attr{ul("Bitcount")}})
	register(&Descriptor{Name: "RIGHT_SHIFT", Attrs: []Attr{ul("Bitcount")}})
	register(&Descriptor{Name: "SIGN_EXTEND"})

	register(&Descriptor{Name: "BYTE_ORDER", Attrs: []Attr{byteorder("ByteOrder")}})
	register(&Descriptor{Name: "CALIBRATION_ACCESS", Attrs: []Attr{
		enum("Type", "CALIBRATION", "NO_CALIBRATION", "NOT_IN_MCD_SYSTEM", "OFFLINE_CALIBRATION"),
	}})
	register(&Descriptor{Name: "COMPARISON_QUANTITY", Attrs: []Attr{id("Name")}})
	register(&Descriptor{Name: "DEPENDENT_CHARACTERISTIC", Block: true, Attrs: []Attr{
		str("Formula"), variadic(id("Characteristic")),
	}})
	register(&Descriptor{Name: "DEPOSIT", Attrs: []Attr{enum("Mode", "ABSOLUTE", "DIFFERENCE")}})
	register(&Descriptor{Name: "DISCRETE"})
	register(&Descriptor{Name: "DISPLAY_IDENTIFIER", Attrs: []Attr{id("Display_Name")}})

	register(&Descriptor{Name: "ECU_ADDRESS", Attrs: []Attr{ul("Address")}})
	register(&Descriptor{Name: "ECU_ADDRESS_EXTENSION", Attrs: []Attr{i("Extension")}})
	register(&Descriptor{Name: "ERROR_MASK", Attrs: []Attr{ul("Mask")}})
	register(&Descriptor{Name: "EXTENDED_LIMITS", Attrs: []Attr{f("LowerLimit"), f("UpperLimit")}})
	register(&Descriptor{Name: "FORMAT", Attrs: []Attr{str("FormatString")}})
	register(&Descriptor{Name: "FUNCTION_LIST", Block: true, Attrs: []Attr{variadic(id("Name"))}})
	register(&Descriptor{Name: "GUARD_RAILS"})

	for _, align := range []string{"ALIGNMENT_BYTE", "ALIGNMENT_FLOAT32_IEEE", "ALIGNMENT_FLOAT64_IEEE",
		"ALIGNMENT_INT64", "ALIGNMENT_LONG", "ALIGNMENT_WORD"} {
		register(&Descriptor{Name: align, Attrs: []Attr{u("AlignmentBorder")}})
	}
	register(&Descriptor{Name: "DATA_SIZE", Attrs: []Attr{u("Size")}})
	register(&Descriptor{Name: "S_REC_LAYOUT", Attrs: []Attr{id("Name")}})

	register(&Descriptor{Name: "LAYOUT", Attrs: []Attr{enum("IndexMode", "ROW_DIR", "COLUMN_DIR")}})
	register(&Descriptor{Name: "MATRIX_DIM", Attrs: []Attr{u("xDim"), u("yDim"), u("zDim")}})
	register(&Descriptor{Name: "MAX_GRAD", Attrs: []Attr{f("MaxGradient")}})
	register(&Descriptor{Name: "MAX_REFRESH", Attrs: []Attr{u("ScalingUnit"), ul("Rate")}})
	register(&Descriptor{Name: "MONOTONY", Attrs: []Attr{enum("Monotony",
		"MON_DECREASE", "MON_INCREASE", "STRICT_DECREASE", "STRICT_INCREASE",
		"MONOTONOUS", "STRICT_MON", "NOT_MON")}})
	register(&Descriptor{Name: "NUMBER", Attrs: []Attr{u("Number")}})
	register(&Descriptor{Name: "PHYS_UNIT", Attrs: []Attr{str("Unit")}})
	register(&Descriptor{Name: "READ_ONLY"})
	register(&Descriptor{Name: "READ_WRITE"})
	register(&Descriptor{Name: "REF_MEMORY_SEGMENT", Attrs: []Attr{id("Name")}})
	register(&Descriptor{Name: "ROOT"})
	register(&Descriptor{Name: "STEP_SIZE", Attrs: []Attr{f("StepSize")}})
	register(&Descriptor{Name: "SYMBOL_LINK", Attrs: []Attr{str("SymbolName"), lg("Offset")}})
	register(&Descriptor{Name: "VIRTUAL", Block: true, Attrs: []Attr{variadic(id("MeasuringChannel"))}})
	register(&Descriptor{Name: "VIRTUAL_CHARACTERISTIC", Block: true, Attrs: []Attr{
		str("Formula"), variadic(id("Characteristic")),
	}})
	register(&Descriptor{Name: "MAP_LIST", Block: true, Attrs: []Attr{variadic(id("Name"))}})

	register(&Descriptor{Name: "DEF_CHARACTERISTIC", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "FUNCTION_VERSION", Attrs: []Attr{str("VersionIdentifier")}})
	register(&Descriptor{Name: "IN_MEASUREMENT", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "LOC_MEASUREMENT", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "OUT_MEASUREMENT", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "REF_CHARACTERISTIC", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "REF_GROUP", Block: true, Multiple: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "REF_MEASUREMENT", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "SUB_FUNCTION", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
	register(&Descriptor{Name: "SUB_GROUP", Block: true, Attrs: []Attr{variadic(id("Identifier"))}})
}
