package catalog

// Default returns the built-in catalog covering the three launch sectors.
// The sequences are the canonical process trains users must reconstruct.
func Default() *Catalog {
	definitions := []ComponentDefinition{
		// Upstream oil & gas processing train
		{ID: "wellhead", Label: "Wellhead", Sector: SectorOilGas, SlotType: SlotTypeFeed},
		{ID: "three-phase-separator", Label: "Three-Phase Separator", Sector: SectorOilGas, SlotType: SlotTypeProcess},
		{ID: "gas-compressor", Label: "Gas Compressor", Sector: SectorOilGas, SlotType: SlotTypeProcess},
		{ID: "glycol-dehydrator", Label: "Glycol Dehydration Unit", Sector: SectorOilGas, SlotType: SlotTypeProcess},
		{ID: "export-metering", Label: "Export Metering Skid", Sector: SectorOilGas, SlotType: SlotTypeOutput},

		// Thermal power generation train
		{ID: "feedwater-pump", Label: "Feedwater Pump", Sector: SectorPower, SlotType: SlotTypeFeed},
		{ID: "boiler", Label: "Boiler", Sector: SectorPower, SlotType: SlotTypeProcess},
		{ID: "steam-turbine", Label: "Steam Turbine", Sector: SectorPower, SlotType: SlotTypeProcess},
		{ID: "generator", Label: "Generator", Sector: SectorPower, SlotType: SlotTypeProcess},
		{ID: "step-up-transformer", Label: "Step-Up Transformer", Sector: SectorPower, SlotType: SlotTypeOutput},

		// Municipal water treatment train
		{ID: "intake-screen", Label: "Intake Screen", Sector: SectorWater, SlotType: SlotTypeFeed},
		{ID: "coagulation-basin", Label: "Coagulation Basin", Sector: SectorWater, SlotType: SlotTypeProcess},
		{ID: "sedimentation-basin", Label: "Sedimentation Basin", Sector: SectorWater, SlotType: SlotTypeProcess},
		{ID: "sand-filter", Label: "Rapid Sand Filter", Sector: SectorWater, SlotType: SlotTypeProcess},
		{ID: "chlorination-unit", Label: "Chlorination Unit", Sector: SectorWater, SlotType: SlotTypeProcess},
		{ID: "clear-well", Label: "Clear Well", Sector: SectorWater, SlotType: SlotTypeOutput},
	}

	sequences := []EngineeringSequence{
		{
			Sector: SectorOilGas,
			ComponentIDs: []string{
				"wellhead",
				"three-phase-separator",
				"gas-compressor",
				"glycol-dehydrator",
				"export-metering",
			},
		},
		{
			Sector: SectorPower,
			ComponentIDs: []string{
				"feedwater-pump",
				"boiler",
				"steam-turbine",
				"generator",
				"step-up-transformer",
			},
		},
		{
			Sector: SectorWater,
			ComponentIDs: []string{
				"intake-screen",
				"coagulation-basin",
				"sedimentation-basin",
				"sand-filter",
				"chlorination-unit",
				"clear-well",
			},
		},
	}

	cat, err := New(sequences, definitions)
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return cat
}

const (
	SectorOilGas = "oil-gas"
	SectorPower  = "power"
	SectorWater  = "water"
)
