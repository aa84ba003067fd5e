package schema

// MEASUREMENT, FUNCTION, GROUP, FRAME, and the UNIT family.
func init() {
	register(&Descriptor{Name: "MEASUREMENT", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "ARRAY_SIZE", "BIT_MASK", "BIT_OPERATION", "BYTE_ORDER", "DISCRETE",
			"DISPLAY_IDENTIFIER", "ECU_ADDRESS", "ECU_ADDRESS_EXTENSION", "ERROR_MASK", "FORMAT",
			"FUNCTION_LIST", "IF_DATA", "LAYOUT", "MATRIX_DIM", "MAX_REFRESH", "PHYS_UNIT", "READ_WRITE",
			"REF_MEMORY_SEGMENT", "SYMBOL_LINK", "VIRTUAL"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"), datatype("Datatype"), id("Conversion"),
			u("Resolution"), f("Accuracy"), f("LowerLimit"), f("UpperLimit"),
		}})

	register(&Descriptor{Name: "FUNCTION", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "DEF_CHARACTERISTIC", "FUNCTION_VERSION", "IF_DATA", "IN_MEASUREMENT",
			"LOC_MEASUREMENT", "OUT_MEASUREMENT", "REF_CHARACTERISTIC", "SUB_FUNCTION"},
		Attrs: []Attr{id("Name"), str("LongIdentifier")}})

	register(&Descriptor{Name: "GROUP", Block: true, Multiple: true,
		Children: []string{"ANNOTATION", "FUNCTION_LIST", "IF_DATA", "REF_CHARACTERISTIC", "REF_MEASUREMENT",
			"ROOT", "SUB_GROUP"},
		Attrs: []Attr{id("GroupName"), str("GroupLongIdentifier")}})

	register(&Descriptor{Name: "FRAME", Block: true,
		Children: []string{"FRAME_MEASUREMENT", "IF_DATA"},
		Attrs:    []Attr{id("Name"), str("LongIdentifier"), u("ScalingUnit"), ul("Rate")}})
	register(&Descriptor{Name: "FRAME_MEASUREMENT", Attrs: []Attr{variadic(id("Identifier"))}})

	register(&Descriptor{Name: "UNIT", Block: true, Multiple: true,
		Children: []string{"SI_EXPONENTS", "REF_UNIT", "UNIT_CONVERSION"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"), str("Display"),
			enum("Type", "DERIVED", "EXTENDED_SI"),
		}})
	register(&Descriptor{Name: "UNIT_CONVERSION", Attrs: []Attr{f("Gradient"), f("Offset")}})
	register(&Descriptor{Name: "SI_EXPONENTS", Attrs: []Attr{
		i("Length"), i("Mass"), i("Time"), i("ElectricCurrent"), i("Temperature"),
		i("AmountOfSubstance"), i("LuminousIntensity"),
	}})
}
