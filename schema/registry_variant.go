package schema

// VARIANT_CODING family and the USER_RIGHTS access-control block.
// Present in the reference implementation but not exercised by the
// distilled spec's worked examples; restored here (see SPEC_FULL.md §8).
func init() {
	register(&Descriptor{Name: "VARIANT_CODING", Block: true,
		Children: []string{"VAR_CHARACTERISTIC", "VAR_CRITERION", "VAR_FORBIDDEN_COMB", "VAR_NAMING", "VAR_SEPARATOR"}})

	register(&Descriptor{Name: "VAR_CHARACTERISTIC", Block: true, Multiple: true,
		Children: []string{"VAR_ADDRESS"},
		Attrs:    []Attr{id("Name"), variadic(id("CriterionName"))}})
	register(&Descriptor{Name: "VAR_ADDRESS", Block: true, Attrs: []Attr{variadic(ul("Address"))}})

	register(&Descriptor{Name: "VAR_CRITERION", Block: true, Multiple: true,
		Children: []string{"VAR_MEASUREMENT", "VAR_SELECTION_CHARACTERISTIC"},
		Attrs:    []Attr{id("Name"), str("LongIdentifier"), variadic(id("Value"))}})
	register(&Descriptor{Name: "VAR_MEASUREMENT", Attrs: []Attr{id("Name")}})
	register(&Descriptor{Name: "VAR_SELECTION_CHARACTERISTIC", Attrs: []Attr{id("Name")}})

	register(&Descriptor{Name: "VAR_FORBIDDEN_COMB", Multiple: true,
		Attrs: []Attr{id("CriterionName"), id("CriterionValue")}})
	register(&Descriptor{Name: "VAR_NAMING", Attrs: []Attr{enum("Tag", "NUMERIC", "APLHA")}})
	register(&Descriptor{Name: "VAR_SEPARATOR", Attrs: []Attr{str("Separator")}})

	register(&Descriptor{Name: "USER_RIGHTS", Block: true, Multiple: true,
		Children: []string{"READ_ONLY", "REF_GROUP"},
		Attrs:    []Attr{id("UserLevelId")}})
}
