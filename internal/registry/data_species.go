package registry

import "marine-platform/internal/models"

// Species climate response parameters compiled from NOAA NEFSC bottom
// trawl surveys, stock assessments, and published centroid analyses.
func buildSpeciesData() []models.SpeciesRecord {
	return []models.SpeciesRecord{
		{
			Species:              "Atlantic Cod",
			ScientificName:       "Gadus morhua",
			TaxaGroup:            "Groundfish",
			ThermalAffinity:      models.ColdWater,
			TempMinC:             2,
			TempMaxC:             12,
			OptimalTempC:         6,
			Trend:                models.TrendDeclining,
			LatShiftKmPerDecade:  -87,
			DepthShiftMPerDecade: 10,
			PopulationChangePct:  -78,
			EconomicImportance:   "High",
			EconomicValueM:       15,
			Description: "Once the economic foundation of New England fisheries, Gulf of Maine cod " +
				"stocks have declined approximately 78% since the 1980s despite severe fishing " +
				"restrictions. Warming waters reduce juvenile survival and shift prey availability, " +
				"preventing recovery even under reduced fishing pressure.",
		},
		{
			Species:              "Northern Shrimp",
			ScientificName:       "Pandalus borealis",
			TaxaGroup:            "Invertebrate",
			ThermalAffinity:      models.ColdWater,
			TempMinC:             0,
			TempMaxC:             8,
			OptimalTempC:         4,
			Trend:                models.TrendCollapsed,
			LatShiftKmPerDecade:  -120,
			DepthShiftMPerDecade: 15,
			PopulationChangePct:  -95,
			EconomicImportance:   "Medium",
			EconomicValueM:       2,
			Description: "The Gulf of Maine northern shrimp fishery was closed in 2013 after a " +
				"population collapse driven by thermal stress. Shrimp require cold bottom water " +
				"below 8C, and sustained warming has rendered the southern Gulf inhospitable.",
		},
		{
			Species:              "American Lobster (S. New England)",
			ScientificName:       "Homarus americanus",
			TaxaGroup:            "Invertebrate",
			ThermalAffinity:      models.CoolWater,
			TempMinC:             12,
			TempMaxC:             18,
			OptimalTempC:         16,
			Trend:                models.TrendDeclining,
			LatShiftKmPerDecade:  -45,
			DepthShiftMPerDecade: 5,
			PopulationChangePct:  -93,
			EconomicImportance:   "Very High",
			EconomicValueM:       8,
			Description: "Southern New England lobster populations have declined 93% since 1990 as " +
				"summer bottom temperatures routinely exceed the species' thermal stress threshold " +
				"of 20C. Epizootic shell disease, strongly correlated with warmer water, has " +
				"compounded mortality.",
		},
		{
			Species:              "American Lobster (Maine)",
			ScientificName:       "Homarus americanus",
			TaxaGroup:            "Invertebrate",
			ThermalAffinity:      models.CoolWater,
			TempMinC:             12,
			TempMaxC:             18,
			OptimalTempC:         16,
			Trend:                models.TrendPlateauing,
			LatShiftKmPerDecade:  15,
			DepthShiftMPerDecade: 2,
			PopulationChangePct:  15,
			EconomicImportance:   "Very High",
			EconomicValueM:       725,
			Description: "Maine lobster landings surged 230% from 1990-2016 as moderate warming " +
				"improved juvenile survival and accelerated growth. Landings have since plateaued " +
				"and trended downward, suggesting the stock is approaching its thermal ceiling.",
		},
		{
			Species:              "Black Sea Bass",
			ScientificName:       "Centropristis striata",
			TaxaGroup:            "Reef Fish",
			ThermalAffinity:      models.WarmWater,
			TempMinC:             14,
			TempMaxC:             26,
			OptimalTempC:         19,
			Trend:                models.TrendExpanding,
			LatShiftKmPerDecade:  75,
			DepthShiftMPerDecade: -8,
			PopulationChangePct:  350,
			EconomicImportance:   "Medium",
			EconomicValueM:       45,
			Description: "Black sea bass have expanded their range northward by roughly 75 km per " +
				"decade, establishing year-round populations where they were previously rare " +
				"seasonal visitors. First recorded in Maine trawl surveys in numbers after 2010.",
		},
		{
			Species:              "Longfin Squid",
			ScientificName:       "Doryteuthis pealeii",
			TaxaGroup:            "Invertebrate",
			ThermalAffinity:      models.WarmWater,
			TempMinC:             10,
			TempMaxC:             22,
			OptimalTempC:         15,
			Trend:                models.TrendExpanding,
			LatShiftKmPerDecade:  65,
			DepthShiftMPerDecade: -5,
			PopulationChangePct:  200,
			EconomicImportance:   "Medium",
			EconomicValueM:       30,
			Description: "Longfin squid abundance in the Gulf of Maine has increased substantially " +
				"as warming expands suitable habitat northward. The species is a key prey item, so " +
				"its redistribution has cascading food web implications.",
		},
		{
			Species:              "Atlantic Mackerel",
			ScientificName:       "Scomber scombrus",
			TaxaGroup:            "Pelagic Fish",
			ThermalAffinity:      models.CoolWater,
			TempMinC:             7,
			TempMaxC:             16,
			OptimalTempC:         11,
			Trend:                models.TrendShiftingNorth,
			LatShiftKmPerDecade:  55,
			DepthShiftMPerDecade: 3,
			PopulationChangePct:  -40,
			EconomicImportance:   "High",
			EconomicValueM:       12,
			Description: "Atlantic mackerel have shifted their center of distribution roughly 55 km " +
				"northward per decade, with spawning timing also moving earlier in the season in " +
				"response to warming.",
		},
		{
			Species:              "Bluefin Tuna",
			ScientificName:       "Thunnus thynnus",
			TaxaGroup:            "Pelagic Fish",
			ThermalAffinity:      models.WarmWater,
			TempMinC:             15,
			TempMaxC:             25,
			OptimalTempC:         20,
			Trend:                models.TrendExpanding,
			LatShiftKmPerDecade:  40,
			DepthShiftMPerDecade: -3,
			PopulationChangePct:  120,
			EconomicImportance:   "High",
			EconomicValueM:       50,
			Description: "Bluefin tuna presence in the Gulf of Maine has increased markedly as the " +
				"species follows northward-shifting forage fish. Harvest in Maine waters has " +
				"reached historic levels in recent years.",
		},
		{
			Species:              "Summer Flounder",
			ScientificName:       "Paralichthys dentatus",
			TaxaGroup:            "Flatfish",
			ThermalAffinity:      models.WarmWater,
			TempMinC:             11,
			TempMaxC:             23,
			OptimalTempC:         17,
			Trend:                models.TrendExpanding,
			LatShiftKmPerDecade:  60,
			DepthShiftMPerDecade: -6,
			PopulationChangePct:  250,
			EconomicImportance:   "High",
			EconomicValueM:       65,
			Description: "Summer flounder have expanded northward into the Gulf of Maine from their " +
				"historical range in the Mid-Atlantic Bight, becoming increasingly common in " +
				"Massachusetts and New Hampshire waters since the early 2000s.",
		},
		{
			Species:              "Jonah Crab",
			ScientificName:       "Cancer borealis",
			TaxaGroup:            "Invertebrate",
			ThermalAffinity:      models.CoolWater,
			TempMinC:             5,
			TempMaxC:             16,
			OptimalTempC:         10,
			Trend:                models.TrendExpanding,
			LatShiftKmPerDecade:  30,
			DepthShiftMPerDecade: -4,
			PopulationChangePct:  180,
			EconomicImportance:   "Medium",
			EconomicValueM:       35,
			Description: "Jonah crab landings have increased 180% in New England waters as this " +
				"cool-water species benefits from moderate warming. Some fishers have moved from " +
				"declining lobster grounds to Jonah crab as an economic adaptation.",
		},
		{
			Species:              "Atlantic Herring",
			ScientificName:       "Clupea harengus",
			TaxaGroup:            "Pelagic Fish",
			ThermalAffinity:      models.ColdWater,
			TempMinC:             3,
			TempMaxC:             12,
			OptimalTempC:         7,
			Trend:                models.TrendDeclining,
			LatShiftKmPerDecade:  -35,
			DepthShiftMPerDecade: 8,
			PopulationChangePct:  -55,
			EconomicImportance:   "Very High",
			EconomicValueM:       55,
			Description: "Atlantic herring, a critical forage species for marine mammals, seabirds, " +
				"and predatory fish, have shown declining biomass in the Gulf of Maine. Reduced " +
				"herring availability has been linked to poor foraging success in puffin colonies.",
		},
		{
			Species:              "Calanus finmarchicus",
			ScientificName:       "Calanus finmarchicus",
			TaxaGroup:            "Zooplankton",
			ThermalAffinity:      models.ColdWater,
			TempMinC:             0,
			TempMaxC:             12,
			OptimalTempC:         5,
			Trend:                models.TrendDeclining,
			LatShiftKmPerDecade:  -50,
			DepthShiftMPerDecade: 12,
			PopulationChangePct:  -70,
			EconomicImportance:   "Ecological",
			EconomicValueM:       0,
			Description: "This copepod is the dominant zooplankton in the Gulf of Maine food web, " +
				"the primary energy link between phytoplankton and higher trophic levels. Its " +
				"abundance has declined roughly 70% as warming favors smaller, less energy-rich " +
				"copepods such as Centropages typicus.",
		},
	}
}
