package registry

import "marine-platform/internal/models"

// Trophic network node set. Fractional trophic levels denote mixed or
// omnivorous diets.
func buildFoodWebNodes() []models.FoodWebNode {
	return []models.FoodWebNode{
		{ID: "phytoplankton", Label: "Phytoplankton", TrophicLevel: 1.0, Category: "Primary Producer", Affinity: models.CoolWater, Trend: models.TrendPlateauing, BaseColor: "#2A9D8F"},
		{ID: "calanus", Label: "Calanus finmarchicus", TrophicLevel: 2.0, Category: "Zooplankton", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#457B9D"},
		{ID: "centropages", Label: "Centropages typicus", TrophicLevel: 2.0, Category: "Zooplankton", Affinity: models.WarmWater, Trend: models.TrendExpanding, BaseColor: "#E63946"},
		{ID: "krill", Label: "Northern Krill", TrophicLevel: 2.2, Category: "Zooplankton", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#457B9D"},
		{ID: "lobster", Label: "American Lobster", TrophicLevel: 2.8, Category: "Benthic Invertebrate", Affinity: models.CoolWater, Trend: models.TrendPlateauing, BaseColor: "#D4A373"},
		{ID: "sandlance", Label: "Sand Lance", TrophicLevel: 3.0, Category: "Forage Fish", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#457B9D"},
		{ID: "rightwhale", Label: "N. Atlantic Right Whale", TrophicLevel: 3.1, Category: "Marine Mammal", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#1D3557"},
		{ID: "herring", Label: "Atlantic Herring", TrophicLevel: 3.2, Category: "Forage Fish", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#457B9D"},
		{ID: "mackerel", Label: "Atlantic Mackerel", TrophicLevel: 3.4, Category: "Pelagic Fish", Affinity: models.CoolWater, Trend: models.TrendShiftingNorth, BaseColor: "#D4A373"},
		{ID: "squid", Label: "Longfin Squid", TrophicLevel: 3.6, Category: "Invertebrate", Affinity: models.WarmWater, Trend: models.TrendExpanding, BaseColor: "#E63946"},
		{ID: "blackseabass", Label: "Black Sea Bass", TrophicLevel: 3.9, Category: "Reef Fish", Affinity: models.WarmWater, Trend: models.TrendExpanding, BaseColor: "#E63946"},
		{ID: "puffin", Label: "Atlantic Puffin", TrophicLevel: 4.0, Category: "Seabird", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#1D3557"},
		{ID: "humpback", Label: "Humpback Whale", TrophicLevel: 4.0, Category: "Marine Mammal", Affinity: models.CoolWater, Trend: models.TrendPlateauing, BaseColor: "#1D3557"},
		{ID: "cod", Label: "Atlantic Cod", TrophicLevel: 4.2, Category: "Groundfish", Affinity: models.ColdWater, Trend: models.TrendDeclining, BaseColor: "#457B9D"},
		{ID: "seals", Label: "Gray Seal", TrophicLevel: 4.4, Category: "Marine Mammal", Affinity: models.CoolWater, Trend: models.TrendExpanding, BaseColor: "#1D3557"},
		{ID: "tuna", Label: "Bluefin Tuna", TrophicLevel: 4.5, Category: "Pelagic Predator", Affinity: models.WarmWater, Trend: models.TrendExpanding, BaseColor: "#E63946"},
	}
}

// Directed energy-flow edges, prey to predator. Both endpoints reference
// node ids above; no self-loops.
func buildFoodWebEdges() []models.FoodWebEdge {
	return []models.FoodWebEdge{
		{Prey: "phytoplankton", Predator: "calanus", Strength: models.StrengthCritical},
		{Prey: "phytoplankton", Predator: "centropages", Strength: models.StrengthStrong},
		{Prey: "phytoplankton", Predator: "krill", Strength: models.StrengthStrong},
		{Prey: "calanus", Predator: "herring", Strength: models.StrengthCritical},
		{Prey: "centropages", Predator: "herring", Strength: models.StrengthModerate},
		{Prey: "krill", Predator: "herring", Strength: models.StrengthModerate},
		{Prey: "calanus", Predator: "sandlance", Strength: models.StrengthStrong},
		{Prey: "calanus", Predator: "rightwhale", Strength: models.StrengthCritical},
		{Prey: "calanus", Predator: "mackerel", Strength: models.StrengthStrong},
		{Prey: "krill", Predator: "mackerel", Strength: models.StrengthModerate},
		{Prey: "centropages", Predator: "squid", Strength: models.StrengthWeak},
		{Prey: "herring", Predator: "cod", Strength: models.StrengthStrong},
		{Prey: "herring", Predator: "tuna", Strength: models.StrengthStrong},
		{Prey: "herring", Predator: "humpback", Strength: models.StrengthStrong},
		{Prey: "herring", Predator: "puffin", Strength: models.StrengthCritical},
		{Prey: "herring", Predator: "seals", Strength: models.StrengthModerate},
		{Prey: "sandlance", Predator: "puffin", Strength: models.StrengthStrong},
		{Prey: "sandlance", Predator: "humpback", Strength: models.StrengthStrong},
		{Prey: "sandlance", Predator: "cod", Strength: models.StrengthModerate},
		{Prey: "mackerel", Predator: "tuna", Strength: models.StrengthModerate},
		{Prey: "squid", Predator: "tuna", Strength: models.StrengthStrong},
		{Prey: "squid", Predator: "blackseabass", Strength: models.StrengthModerate},
		{Prey: "lobster", Predator: "cod", Strength: models.StrengthModerate},
		{Prey: "lobster", Predator: "blackseabass", Strength: models.StrengthModerate},
		{Prey: "lobster", Predator: "seals", Strength: models.StrengthWeak},
		{Prey: "cod", Predator: "seals", Strength: models.StrengthWeak},
	}
}
