package schema

// IF_DATA and the CCP/XCP transport sub-grammar nested inside it
// (SOURCE/QP_BLOB measurement-collection description, TP_BLOB
// transport-layer parameters). These are vendor keywords the standard
// leaves to per-protocol metalanguage, but the reference implementation
// models the common CCP/XCP-on-CAN shapes as ordinary typed keywords;
// this registry does the same rather than leaving IF_DATA bodies opaque
// (only the A2ML block itself is opaque text, per the grammar's scope).
func init() {
	register(&Descriptor{Name: "IF_DATA", Block: true, Multiple: true,
		Children: []string{"SOURCE", "RASTER", "TP_BLOB"},
		Attrs:    []Attr{id("Name")}})

	register(&Descriptor{Name: "SOURCE", Multiple: true,
		Children: []string{"QP_BLOB"},
		Attrs:    []Attr{str("Name"), i("BasicScaling"), i("RateInScalingUnit")}})
	register(&Descriptor{Name: "QP_BLOB", Multiple: true,
		Children: []string{"CAN_ID_FIXED", "LENGTH", "CAN_ID_VARIABLE", "RASTER", "EXCLUSIVE", "REDUCTION_ALLOWED", "FIRST_PID"},
		Attrs:    []Attr{ul("Length")}})
	register(&Descriptor{Name: "CAN_ID_FIXED", Multiple: true, Attrs: []Attr{ul("CanID")}})
	register(&Descriptor{Name: "CAN_ID_VARIABLE"})
	register(&Descriptor{Name: "LENGTH", Multiple: true, Attrs: []Attr{i("LENGTH")}})
	register(&Descriptor{Name: "EXCLUSIVE", Multiple: true, Attrs: []Attr{i("Exclusive")}})
	register(&Descriptor{Name: "REDUCTION_ALLOWED"})
	register(&Descriptor{Name: "FIRST_PID", Multiple: true, Attrs: []Attr{str("FirstPiD")}})

	// RASTER: the five-attribute form used inside IF_DATA. The source's
	// single-attribute "RASTERAttr" class is unreachable from any
	// children set and is not carried forward (see the open questions
	// in the registry's design notes).
	register(&Descriptor{Name: "RASTER", Multiple: true, Attrs: []Attr{
		str("RasterName"), str("RasterShortName"), i("RasterID"), i("ScalingUnit"), ul("Rate"),
	}})

	register(&Descriptor{Name: "TP_BLOB", Multiple: true,
		Children: []string{"DAQ_MODE", "CONSISTENCY", "ADDRESS_EXTENSION", "BYTES_ONLY",
			"CHECKSUM_PARAM", "OPTIONAL_CMD", "CAN_PARAM", "BAUDRATE", "SAMPLE_POINT",
			"SAMPLE_RATE", "BTL_CYCLES", "SJW", "SYNC_EDGE",
			"RESUME_SUPPORTED", "STORE_SUPPORTED", "DEFINED_PAGES"},
		Attrs: []Attr{
			i("CCPVersion"), i("BlobVersion"), ul("CrmId"), ul("DtmId"),
			u("EcuStationAddr"), u("ByteOrder"),
		}})
	register(&Descriptor{Name: "DAQ_MODE", Multiple: true, Attrs: []Attr{enum("DAQ_MODE", "ALTERNATING", "BURST")}})
	register(&Descriptor{Name: "CONSISTENCY", Multiple: true, Attrs: []Attr{enum("CONSISTENCY", "DAQ", "ODT")}})
	register(&Descriptor{Name: "ADDRESS_EXTENSION", Multiple: true, Attrs: []Attr{enum("ADDRESS_EXTENSION", "DAQ", "ODT")}})
	register(&Descriptor{Name: "BYTES_ONLY"})
	register(&Descriptor{Name: "CHECKSUM_PARAM", Multiple: true,
		Children: []string{"CHECKSUM_CALCULATION"},
		Attrs:    []Attr{i("CheckSumProc"), ul("MaxBlkSize")}})
	register(&Descriptor{Name: "CHECKSUM_CALCULATION", Multiple: true,
		Attrs: []Attr{enum("CHECKSUM_CALCULATION", "ACTIVE_PAGE", "BIT_OR_WITH_OPT_PAGE")}})
	register(&Descriptor{Name: "OPTIONAL_CMD", Multiple: true, Attrs: []Attr{u("OPTIONAL_CMD")}})
	register(&Descriptor{Name: "CAN_PARAM", Multiple: true, Attrs: []Attr{u("QuartzFreq"), str("BTR0"), str("BTR1")}})
	register(&Descriptor{Name: "BAUDRATE", Multiple: true, Attrs: []Attr{ul("BAUDRATE")}})
	register(&Descriptor{Name: "SAMPLE_POINT", Multiple: true, Attrs: []Attr{str("SAMPLE_POINT")}})
	register(&Descriptor{Name: "SAMPLE_RATE", Multiple: true, Attrs: []Attr{str("SAMPLE_RATE")}})
	register(&Descriptor{Name: "BTL_CYCLES", Multiple: true, Attrs: []Attr{str("BTL_CYCLES")}})
	register(&Descriptor{Name: "SJW", Multiple: true, Attrs: []Attr{str("SJW")}})
	register(&Descriptor{Name: "SYNC_EDGE", Multiple: true, Attrs: []Attr{enum("SYNC_EDGE", "SINGLE", "DUAL")}})
	register(&Descriptor{Name: "RESUME_SUPPORTED"})
	register(&Descriptor{Name: "STORE_SUPPORTED"})

	register(&Descriptor{Name: "DEFINED_PAGES", Multiple: true,
		Children: []string{"RAM", "ROM", "FLASH", "EEPROM", "RAM_INIT_BY_ECU", "RAM_INIT_BY_TOOL",
			"AUTO_FLASH_BACK", "FLASH_BACK", "DEFAULT"},
		Attrs: []Attr{str("Name"), i("LogicalNo"), i("AdressExtension"), ul("BaseAddress"), ul("MemPageSize")}})
	for _, page := range []string{"RAM", "ROM", "FLASH", "EEPROM", "RAM_INIT_BY_ECU", "RAM_INIT_BY_TOOL",
		"AUTO_FLASH_BACK", "FLASH_BACK", "DEFAULT"} {
		register(&Descriptor{Name: page})
	}
}
