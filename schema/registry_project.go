package schema

// The file envelope and MODULE-level administrative keywords: the
// ASAP2_VERSION prologue, PROJECT/HEADER/MODULE hierarchy, and
// MOD_COMMON/MOD_PAR metadata blocks.
func init() {
	register(&Descriptor{Name: "ASAP2_VERSION", Attrs: []Attr{u("VersionNo"), u("UpgradeNo")}})
	register(&Descriptor{Name: "A2ML_VERSION", Attrs: []Attr{u("VersionNo"), u("UpgradeNo")}})
	register(&Descriptor{Name: "A2ML", Block: true, TextNode: true})

	register(&Descriptor{Name: "PROJECT", Block: true, Required: true,
		Children: []string{"HEADER", "MODULE"},
		Attrs:    []Attr{id("Name"), str("LongIdentifier")}})
	register(&Descriptor{Name: "PROJECT_NO", Attrs: []Attr{id("ProjectNumber")}})
	register(&Descriptor{Name: "HEADER", Block: true,
		Children: []string{"PROJECT_NO", "VERSION"},
		Attrs:    []Attr{str("Comment")}})
	register(&Descriptor{Name: "VERSION", Attrs: []Attr{str("VersionIdentifier")}})

	register(&Descriptor{Name: "MODULE", Block: true, Multiple: true,
		Children: []string{"A2ML", "AXIS_PTS", "CHARACTERISTIC", "COMPU_METHOD", "COMPU_TAB",
			"COMPU_VTAB", "COMPU_VTAB_RANGE", "FRAME", "FUNCTION", "GROUP", "IF_DATA",
			"MEASUREMENT", "MOD_COMMON", "MOD_PAR", "RECORD_LAYOUT", "UNIT", "USER_RIGHTS",
			"VARIANT_CODING"},
		Attrs: []Attr{id("Name"), str("LongIdentifier")}})

	register(&Descriptor{Name: "MOD_COMMON", Block: true,
		Children: []string{"ALIGNMENT_BYTE", "ALIGNMENT_FLOAT32_IEEE", "ALIGNMENT_FLOAT64_IEEE",
			"ALIGNMENT_INT64", "ALIGNMENT_LONG", "ALIGNMENT_WORD", "BYTE_ORDER", "DATA_SIZE",
			"DEPOSIT", "S_REC_LAYOUT"},
		Attrs: []Attr{str("Comment")}})

	register(&Descriptor{Name: "MOD_PAR", Block: true,
		Children: []string{"ADDR_EPK", "CALIBRATION_METHOD", "CPU_TYPE", "CUSTOMER", "CUSTOMER_NO",
			"ECU", "ECU_CALIBRATION_OFFSET", "EPK", "MEMORY_LAYOUT", "MEMORY_SEGMENT",
			"NO_OF_INTERFACES", "PHONE_NO", "SUPPLIER", "SYSTEM_CONSTANT", "USER", "VERSION"},
		Attrs: []Attr{str("Comment")}})

	register(&Descriptor{Name: "ADDR_EPK", Multiple: true, Attrs: []Attr{ul("Address")}})
	register(&Descriptor{Name: "CALIBRATION_METHOD", Block: true, Multiple: true,
		Children: []string{"CALIBRATION_HANDLE"},
		Attrs:    []Attr{str("Method"), ul("Version")}})
	register(&Descriptor{Name: "CALIBRATION_HANDLE", Block: true, Multiple: true,
		Children: []string{"CALIBRATION_HANDLE_TEXT"},
		Attrs:    []Attr{variadic(lg("Handle"))}})
	register(&Descriptor{Name: "CALIBRATION_HANDLE_TEXT", Attrs: []Attr{str("Text")}})
	register(&Descriptor{Name: "CPU_TYPE", Attrs: []Attr{str("CPU")}})
	register(&Descriptor{Name: "CUSTOMER", Attrs: []Attr{str("Customer")}})
	register(&Descriptor{Name: "CUSTOMER_NO", Attrs: []Attr{str("Number")}})
	register(&Descriptor{Name: "ECU", Attrs: []Attr{str("ControlUnit")}})
	register(&Descriptor{Name: "ECU_CALIBRATION_OFFSET", Attrs: []Attr{lg("Offset")}})
	register(&Descriptor{Name: "EPK", Attrs: []Attr{str("Identifier")}})
	register(&Descriptor{Name: "NO_OF_INTERFACES", Attrs: []Attr{u("Num")}})
	register(&Descriptor{Name: "PHONE_NO", Attrs: []Attr{str("Telnum")}})
	register(&Descriptor{Name: "SUPPLIER", Attrs: []Attr{str("Manufacturer")}})
	register(&Descriptor{Name: "SYSTEM_CONSTANT", Multiple: true, Attrs: []Attr{str("Name"), str("Value")}})
	register(&Descriptor{Name: "USER", Attrs: []Attr{str("UserName")}})

	register(&Descriptor{Name: "MEMORY_LAYOUT", Block: true, Multiple: true,
		Children: []string{"IF_DATA"},
		Attrs: []Attr{
			enum("PrgType", "PRG_CODE", "PRG_DATA", "PRG_RESERVED"),
			ul("Address"), ul("Size"),
			lg("Offset0"), lg("Offset1"), lg("Offset2"), lg("Offset3"), lg("Offset4"),
		}})
	register(&Descriptor{Name: "MEMORY_SEGMENT", Block: true, Multiple: true,
		Children: []string{"IF_DATA"},
		Attrs: []Attr{
			id("Name"), str("LongIdentifier"),
			enum("PrgType", "CALIBRATION_VARIABLES", "CODE", "DATA", "EXCLUDE_FROM_FLASH",
				"OFFLINE_DATA", "RESERVED", "SERAM", "VARIABLES"),
			enum("MemoryType", "EEPROM", "EPROM", "FLASH", "RAM", "ROM", "REGISTER"),
			enum("Attribute", "INTERN", "EXTERN"),
			ul("Address"), ul("Size"),
			lg("Offset0"), lg("Offset1"), lg("Offset2"), lg("Offset3"), lg("Offset4"),
		}})
}
