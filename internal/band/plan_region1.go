package band

// IARURegion1 is the HF and VHF band plan of IARU Region 1 (Europe, Africa,
// Middle East and northern Asia).
var IARURegion1 = Plan{
	Region: "IARU Region 1",
	Segments: []Segment{
		{Band160m, NewRange(1_810_000, 1_838_000), SegmentCW},
		{Band160m, NewRange(1_838_000, 1_840_000), SegmentNarrow},
		{Band160m, NewRange(1_840_000, 1_843_000), SegmentDigital},
		{Band160m, NewRange(1_843_000, 2_000_000), SegmentAllModes},

		{Band80m, NewRange(3_500_000, 3_570_000), SegmentCW},
		{Band80m, NewRange(3_500_000, 3_510_000), SegmentDXPreferred},
		{Band80m, NewRange(3_510_000, 3_560_000), SegmentContestPreferred},
		{Band80m, NewRange(3_570_000, 3_600_000), SegmentNarrow},
		{Band80m, NewRange(3_600_000, 3_800_000), SegmentAllModes},
		{Band80m, NewRange(3_600_000, 3_650_000), SegmentContestPreferred},
		{Band80m, NewRange(3_700_000, 3_800_000), SegmentContestPreferred},
		{Band80m, NewRange(3_775_000, 3_800_000), SegmentDXPreferred},

		{Band60m, NewRange(5_351_500, 5_354_000), SegmentNarrow},
		{Band60m, NewRange(5_354_000, 5_366_000), SegmentAllModes},
		{Band60m, NewRange(5_366_000, 5_366_500), SegmentNarrow},

		{Band40m, NewRange(7_000_000, 7_040_000), SegmentCW},
		{Band40m, NewRange(7_000_000, 7_025_000), SegmentContestPreferred},
		{Band40m, NewRange(7_040_000, 7_050_000), SegmentNarrow},
		{Band40m, NewRange(7_050_000, 7_053_000), SegmentDigital},
		{Band40m, NewRange(7_053_000, 7_200_000), SegmentAllModes},
		{Band40m, NewRange(7_060_000, 7_100_000), SegmentContestPreferred},
		{Band40m, NewRange(7_130_000, 7_200_000), SegmentContestPreferred},
		{Band40m, NewRange(7_175_000, 7_200_000), SegmentDXPreferred},

		{Band30m, NewRange(10_100_000, 10_130_000), SegmentCW},
		{Band30m, NewRange(10_130_000, 10_150_000), SegmentNarrow},

		{Band20m, NewRange(14_000_000, 14_070_000), SegmentCW},
		{Band20m, NewRange(14_000_000, 14_060_000), SegmentContestPreferred},
		{Band20m, NewRange(14_070_000, 14_089_000), SegmentNarrow},
		{Band20m, NewRange(14_089_000, 14_099_000), SegmentDigital},
		{Band20m, NewRange(14_099_000, 14_101_000), SegmentBeacon},
		{Band20m, NewRange(14_101_000, 14_112_000), SegmentDigital},
		{Band20m, NewRange(14_112_000, 14_350_000), SegmentAllModes},
		{Band20m, NewRange(14_125_000, 14_300_000), SegmentContestPreferred},
		{Band20m, NewRange(14_195_000, 14_200_000), SegmentDXPreferred},

		{Band17m, NewRange(18_068_000, 18_095_000), SegmentCW},
		{Band17m, NewRange(18_095_000, 18_109_000), SegmentNarrow},
		{Band17m, NewRange(18_109_000, 18_111_000), SegmentBeacon},
		{Band17m, NewRange(18_111_000, 18_168_000), SegmentAllModes},

		{Band15m, NewRange(21_000_000, 21_070_000), SegmentCW},
		{Band15m, NewRange(21_070_000, 21_110_000), SegmentNarrow},
		{Band15m, NewRange(21_110_000, 21_120_000), SegmentDigital},
		{Band15m, NewRange(21_120_000, 21_149_000), SegmentNarrow},
		{Band15m, NewRange(21_149_000, 21_151_000), SegmentBeacon},
		{Band15m, NewRange(21_151_000, 21_450_000), SegmentAllModes},

		{Band12m, NewRange(24_890_000, 24_915_000), SegmentCW},
		{Band12m, NewRange(24_915_000, 24_929_000), SegmentNarrow},
		{Band12m, NewRange(24_929_000, 24_931_000), SegmentBeacon},
		{Band12m, NewRange(24_931_000, 24_990_000), SegmentAllModes},

		{Band10m, NewRange(28_000_000, 28_070_000), SegmentCW},
		{Band10m, NewRange(28_070_000, 28_190_000), SegmentNarrow},
		{Band10m, NewRange(28_190_000, 28_225_000), SegmentBeacon},
		{Band10m, NewRange(28_225_000, 29_200_000), SegmentAllModes},
		{Band10m, NewRange(29_200_000, 29_300_000), SegmentDigital},
		{Band10m, NewRange(29_300_000, 29_510_000), SegmentSatellite},
		{Band10m, NewRange(29_520_000, 29_700_000), SegmentFM},

		{Band6m, NewRange(50_000_000, 50_100_000), SegmentCW},
		{Band6m, NewRange(50_030_000, 50_080_000), SegmentBeacon},
		{Band6m, NewRange(50_100_000, 50_500_000), SegmentNarrow},
		{Band6m, NewRange(50_500_000, 52_000_000), SegmentAllModes},

		{Band2m, NewRange(144_000_000, 144_025_000), SegmentSatellite},
		{Band2m, NewRange(144_025_000, 144_150_000), SegmentCW},
		{Band2m, NewRange(144_150_000, 144_400_000), SegmentNarrow},
		{Band2m, NewRange(144_400_000, 144_490_000), SegmentBeacon},
		{Band2m, NewRange(144_500_000, 144_794_000), SegmentAllModes},
		{Band2m, NewRange(144_794_000, 144_990_000), SegmentDigital},
		{Band2m, NewRange(144_990_000, 145_194_000), SegmentFM},
		{Band2m, NewRange(145_194_000, 145_206_000), SegmentSatellite},
		{Band2m, NewRange(145_206_000, 145_794_000), SegmentFM},
		{Band2m, NewRange(145_806_000, 146_000_000), SegmentSatellite},
	},
	Markers: []Marker{
		{Band160m, 1_836_000, MarkerQRP, "CW QRP"},
		{Band160m, 1_840_000, MarkerDigital, "FT8"},

		{Band80m, 3_560_000, MarkerQRP, "CW QRP"},
		{Band80m, 3_573_000, MarkerDigital, "FT8"},
		{Band80m, 3_690_000, MarkerQRP, "SSB QRP"},
		{Band80m, 3_735_000, MarkerSSTV, "SSTV"},
		{Band80m, 3_760_000, MarkerEmergency, "Region 1 emergency"},

		{Band60m, 5_357_000, MarkerDigital, "FT8"},

		{Band40m, 7_030_000, MarkerQRP, "CW QRP"},
		{Band40m, 7_074_000, MarkerDigital, "FT8"},
		{Band40m, 7_090_000, MarkerQRP, "SSB QRP"},
		{Band40m, 7_110_000, MarkerEmergency, "Region 1 emergency"},
		{Band40m, 7_165_000, MarkerSSTV, "SSTV"},

		{Band30m, 10_116_000, MarkerQRP, "CW QRP"},
		{Band30m, 10_136_000, MarkerDigital, "FT8"},

		{Band20m, 14_060_000, MarkerQRP, "CW QRP"},
		{Band20m, 14_074_000, MarkerDigital, "FT8"},
		{Band20m, 14_100_000, MarkerBeacon, "NCDXF/IARU beacons"},
		{Band20m, 14_230_000, MarkerSSTV, "SSTV"},
		{Band20m, 14_285_000, MarkerQRP, "SSB QRP"},
		{Band20m, 14_300_000, MarkerEmergency, "Global emergency"},

		{Band17m, 18_086_000, MarkerQRP, "CW QRP"},
		{Band17m, 18_100_000, MarkerDigital, "FT8"},
		{Band17m, 18_110_000, MarkerBeacon, "NCDXF/IARU beacons"},
		{Band17m, 18_130_000, MarkerQRP, "SSB QRP"},
		{Band17m, 18_160_000, MarkerEmergency, "Global emergency"},

		{Band15m, 21_060_000, MarkerQRP, "CW QRP"},
		{Band15m, 21_074_000, MarkerDigital, "FT8"},
		{Band15m, 21_150_000, MarkerBeacon, "NCDXF/IARU beacons"},
		{Band15m, 21_285_000, MarkerQRP, "SSB QRP"},
		{Band15m, 21_340_000, MarkerSSTV, "SSTV"},
		{Band15m, 21_360_000, MarkerEmergency, "Global emergency"},

		{Band12m, 24_906_000, MarkerQRP, "CW QRP"},
		{Band12m, 24_915_000, MarkerDigital, "FT8"},
		{Band12m, 24_930_000, MarkerBeacon, "NCDXF/IARU beacons"},
		{Band12m, 24_950_000, MarkerQRP, "SSB QRP"},

		{Band10m, 28_060_000, MarkerQRP, "CW QRP"},
		{Band10m, 28_074_000, MarkerDigital, "FT8"},
		{Band10m, 28_200_000, MarkerBeacon, "NCDXF/IARU beacons"},
		{Band10m, 28_360_000, MarkerQRP, "SSB QRP"},
		{Band10m, 28_680_000, MarkerSSTV, "SSTV"},
		{Band10m, 29_600_000, MarkerCalling, "FM calling"},

		{Band6m, 50_090_000, MarkerCalling, "CW calling"},
		{Band6m, 50_150_000, MarkerCalling, "SSB calling"},
		{Band6m, 50_313_000, MarkerDigital, "FT8"},

		{Band2m, 144_050_000, MarkerCalling, "CW calling"},
		{Band2m, 144_174_000, MarkerDigital, "FT8"},
		{Band2m, 144_300_000, MarkerCalling, "SSB calling"},
		{Band2m, 144_800_000, MarkerDigital, "APRS"},
		{Band2m, 145_500_000, MarkerCalling, "FM calling"},
	},
}
