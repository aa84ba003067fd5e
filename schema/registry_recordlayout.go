package schema

// RECORD_LAYOUT and its ~60 positional-field children, describing a
// characteristic's bit/byte layout in ECU memory.
func init() {
	register(&Descriptor{Name: "RECORD_LAYOUT", Block: true, Multiple: true,
		Children: []string{"ALIGNMENT_BYTE", "ALIGNMENT_FLOAT32_IEEE", "ALIGNMENT_FLOAT64_IEEE", "ALIGNMENT_INT64",
			"ALIGNMENT_LONG", "ALIGNMENT_WORD", "AXIS_PTS_X", "AXIS_PTS_Y", "AXIS_PTS_Z", "AXIS_PTS_4",
			"AXIS_PTS_5", "AXIS_RESCALE_X", "AXIS_RESCALE_Y", "AXIS_RESCALE_Z", "AXIS_RESCALE_4",
			"AXIS_RESCALE_5", "DIST_OP_X", "DIST_OP_Y", "DIST_OP_Z", "DIST_OP_4", "DIST_OP_5",
			"FIX_NO_AXIS_PTS_X", "FIX_NO_AXIS_PTS_Y", "FIX_NO_AXIS_PTS_Z", "FIX_NO_AXIS_PTS_4",
			"FIX_NO_AXIS_PTS_5", "FNC_VALUES", "IDENTIFICATION", "NO_AXIS_PTS_X", "NO_AXIS_PTS_Y",
			"NO_AXIS_PTS_Z", "NO_AXIS_PTS_4", "NO_AXIS_PTS_5", "STATIC_RECORD_LAYOUT",
			"NO_RESCALE_X", "NO_RESCALE_Y", "NO_RESCALE_Z", "NO_RESCALE_4", "NO_RESCALE_5",
			"OFFSET_X", "OFFSET_Y", "OFFSET_Z", "OFFSET_4", "OFFSET_5", "RESERVED", "RIP_ADDR_W",
			"RIP_ADDR_X", "RIP_ADDR_Y", "RIP_ADDR_Z", "RIP_ADDR_4", "RIP_ADDR_5", "SHIFT_OP_X",
			"SHIFT_OP_Y", "SHIFT_OP_Z", "SHIFT_OP_4", "SHIFT_OP_5", "SRC_ADDR_X", "SRC_ADDR_Y",
			"SRC_ADDR_Z", "SRC_ADDR_4", "SRC_ADDR_5"},
		Attrs: []Attr{id("Name")}})

	for _, axis := range []string{"X", "Y", "Z", "4", "5"} {
		register(&Descriptor{Name: "AXIS_PTS_" + axis, Attrs: []Attr{
			u("Position"), datatype("Datatype"), indexorder("IndexIncr"), addrtype("Addressing"),
		}})
		register(&Descriptor{Name: "AXIS_RESCALE_" + axis, Attrs: []Attr{
			u("Position"), datatype("Datatype"), u("MaxNumberOfRescalePairs"),
			indexorder("IndexIncr"), addrtype("Adressing"),
		}})
		register(&Descriptor{Name: "DIST_OP_" + axis, Attrs: []Attr{u("Position"), datatype("Datatype")}})
		register(&Descriptor{Name: "FIX_NO_AXIS_PTS_" + axis, Attrs: []Attr{u("NumberOfAxisPoints")}})
		register(&Descriptor{Name: "NO_AXIS_PTS_" + axis, Attrs: []Attr{u("Position"), datatype("Datatype")}})
		register(&Descriptor{Name: "NO_RESCALE_" + axis, Attrs: []Attr{u("Position"), datatype("Datatype")}})
		register(&Descriptor{Name: "OFFSET_" + axis, Attrs: []Attr{u("Position"), datatype("Datatype")}})
		register(&Descriptor{Name: "RIP_ADDR_" + axis, Attrs: []Attr{u("Position"), datasize("DataSize")}})
		register(&Descriptor{Name: "SHIFT_OP_" + axis, Attrs: []Attr{u("Position"), datasize("DataSize")}})
		register(&Descriptor{Name: "SRC_ADDR_" + axis, Attrs: []Attr{u("Position"), datasize("DataSize")}})
	}
	register(&Descriptor{Name: "RIP_ADDR_W", Attrs: []Attr{u("Position"), datasize("DataSize")}})

	register(&Descriptor{Name: "FNC_VALUES", Attrs: []Attr{
		u("Position"), datatype("Datatype"),
		enum("IndexMode", "ALTERNATE_CURVES", "ALTERNATE_WITH_X", "ALTERNATE_WITH_Y", "COLUMN_DIR", "ROW_DIR"),
		addrtype("Addresstype"),
	}})
	register(&Descriptor{Name: "IDENTIFICATION", Attrs: []Attr{u("Position"), datatype("Datatype")}})
	register(&Descriptor{Name: "RESERVED", Multiple: true, Attrs: []Attr{u("Position"), datasize("DataSize")}})
	register(&Descriptor{Name: "STATIC_RECORD_LAYOUT"})
}
