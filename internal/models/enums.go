package models

// TemperatureUnit selects the unit for temperature-bearing view fields
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
)

// Valid reports whether the unit is one of the closed set
func (u TemperatureUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// ThermalAffinity is a species' preferred temperature regime
type ThermalAffinity string

const (
	ColdWater ThermalAffinity = "Cold-water"
	CoolWater ThermalAffinity = "Cool-water"
	WarmWater ThermalAffinity = "Warm-water"
)

// Valid reports whether the affinity is one of the closed set
func (a ThermalAffinity) Valid() bool {
	switch a {
	case ColdWater, CoolWater, WarmWater:
		return true
	}
	return false
}

// AllAffinities returns the full affinity set in canonical order
func AllAffinities() []ThermalAffinity {
	return []ThermalAffinity{ColdWater, CoolWater, WarmWater}
}

// PopulationTrend is the closed set of species population trajectories
type PopulationTrend string

const (
	TrendDeclining     PopulationTrend = "Declining"
	TrendCollapsed     PopulationTrend = "Collapsed"
	TrendPlateauing    PopulationTrend = "Plateauing"
	TrendExpanding     PopulationTrend = "Expanding"
	TrendShiftingNorth PopulationTrend = "Shifting North"
)

// Valid reports whether the trend is one of the closed set
func (t PopulationTrend) Valid() bool {
	switch t {
	case TrendDeclining, TrendCollapsed, TrendPlateauing, TrendExpanding, TrendShiftingNorth:
		return true
	}
	return false
}

// EdgeStrength classifies energy-flow magnitude along a food-web edge
type EdgeStrength string

const (
	StrengthWeak     EdgeStrength = "weak"
	StrengthModerate EdgeStrength = "moderate"
	StrengthStrong   EdgeStrength = "strong"
	StrengthCritical EdgeStrength = "critical"
)

// Valid reports whether the strength is one of the closed set
func (s EdgeStrength) Valid() bool {
	switch s {
	case StrengthWeak, StrengthModerate, StrengthStrong, StrengthCritical:
		return true
	}
	return false
}

// ColorMode selects the food-web node fill color mapping
type ColorMode string

const (
	ColorByTrend        ColorMode = "population_trend"
	ColorByAffinity     ColorMode = "thermal_affinity"
	ColorByTrophicLevel ColorMode = "trophic_level"
)

// Valid reports whether the color mode is one of the closed set
func (m ColorMode) Valid() bool {
	switch m {
	case ColorByTrend, ColorByAffinity, ColorByTrophicLevel:
		return true
	}
	return false
}

// MapViewMode selects which spatial layer the map view emphasizes
type MapViewMode string

const (
	MapCentroids MapViewMode = "centroids"
	MapRanges    MapViewMode = "ranges"
	MapHotspots  MapViewMode = "hotspots"
)

// Valid reports whether the map mode is one of the closed set
func (m MapViewMode) Valid() bool {
	switch m {
	case MapCentroids, MapRanges, MapHotspots:
		return true
	}
	return false
}
