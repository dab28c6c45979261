package models

// TemperatureRecord is one annual mean sea surface temperature observation
// for the core Gulf of Maine region, with anomaly relative to the
// 1901-2000 baseline. Years are strictly increasing and contiguous.
type TemperatureRecord struct {
	Year           int     `json:"year" db:"year"`
	SSTCelsius     float64 `json:"sst_celsius" db:"sst_celsius"`
	AnomalyCelsius float64 `json:"anomaly_celsius" db:"anomaly_celsius"`
}

// SpeciesRecord describes one species' climate response parameters,
// compiled from trawl surveys and published centroid analyses.
// Species is the unique key.
type SpeciesRecord struct {
	Species              string          `json:"species" db:"species"`
	ScientificName       string          `json:"scientific_name" db:"scientific_name"`
	TaxaGroup            string          `json:"taxa_group" db:"taxa_group"`
	ThermalAffinity      ThermalAffinity `json:"thermal_affinity" db:"thermal_affinity"`
	TempMinC             float64         `json:"temp_min_c" db:"temp_min_c"`
	TempMaxC             float64         `json:"temp_max_c" db:"temp_max_c"`
	OptimalTempC         float64         `json:"optimal_temp_c" db:"optimal_temp_c"`
	Trend                PopulationTrend `json:"trend" db:"trend"`
	LatShiftKmPerDecade  float64         `json:"lat_shift_km_decade" db:"lat_shift_km_decade"`
	DepthShiftMPerDecade float64         `json:"depth_shift_m_decade" db:"depth_shift_m_decade"`
	PopulationChangePct  float64         `json:"population_change_pct" db:"population_change_pct"`
	EconomicImportance   string          `json:"economic_importance" db:"economic_importance"`
	EconomicValueM       float64         `json:"economic_value_millions" db:"economic_value_millions"`
	Description          string          `json:"description" db:"description"`
}

// LandingsRecord is one year of regional lobster landings with dockside
// value and, where available, Southern New England mean bottom temperature.
// The year axis is irregular (not every year is sampled).
type LandingsRecord struct {
	Year              int      `json:"year" db:"year"`
	MaineMillionsLbs  float64  `json:"maine_millions_lbs" db:"maine_millions_lbs"`
	SNEMillionsLbs    float64  `json:"southern_ne_millions_lbs" db:"southern_ne_millions_lbs"`
	MaineValueM       float64  `json:"maine_value_millions" db:"maine_value_millions"`
	SNEBottomTempC    *float64 `json:"sne_avg_bottom_temp_c,omitempty" db:"sne_avg_bottom_temp_c"`
}

// EcosystemRecord is one year of ecosystem-level indicators.
type EcosystemRecord struct {
	Year                  int     `json:"year" db:"year"`
	CalanusAbundanceIndex float64 `json:"calanus_abundance_index" db:"calanus_abundance_index"`
	WarmSpeciesRichness   float64 `json:"warm_species_richness" db:"warm_species_richness"`
	ColdSpeciesRichness   float64 `json:"cold_species_richness" db:"cold_species_richness"`
	MarineHeatwaveDays    float64 `json:"marine_heatwave_days" db:"marine_heatwave_days"`
	RightWhaleSightings   float64 `json:"right_whale_sightings" db:"right_whale_sightings"`
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Hotspot is a named high-density location within a species' range.
type Hotspot struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// SpatialRecord summarizes one species' historical vs current geography.
// Species is a foreign key into the species dataset. ShiftKm and
// ShiftDirection are curated inputs, not derived from the centroids;
// consistency against a haversine estimate is checked, never recomputed.
type SpatialRecord struct {
	Species            string     `json:"species" db:"species"`
	HistoricalCentroid Coordinate `json:"historical_centroid"`
	CurrentCentroid    Coordinate `json:"current_centroid"`
	HistoricalSouthLat float64    `json:"historical_south_lat" db:"historical_south_lat"`
	HistoricalNorthLat float64    `json:"historical_north_lat" db:"historical_north_lat"`
	CurrentSouthLat    float64    `json:"current_south_lat" db:"current_south_lat"`
	CurrentNorthLat    float64    `json:"current_north_lat" db:"current_north_lat"`
	HistoricalHotspot  Hotspot    `json:"historical_hotspot"`
	CurrentHotspot     Hotspot    `json:"current_hotspot"`
	ShiftKm            float64    `json:"shift_km" db:"shift_km"`
	ShiftDirection     string     `json:"shift_direction" db:"shift_direction"`
}

// FoodWebNode is one species or functional group in the trophic network.
// TrophicLevel supports fractional levels for omnivorous diets.
type FoodWebNode struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	TrophicLevel float64         `json:"trophic_level"`
	Category     string          `json:"category"`
	Affinity     ThermalAffinity `json:"thermal_affinity"`
	Trend        PopulationTrend `json:"trend"`
	BaseColor    string          `json:"base_color"`
}

// FoodWebEdge is one directed energy flow from prey to predator.
// Self-loops are not allowed; both endpoints must name existing nodes.
type FoodWebEdge struct {
	Prey     string       `json:"prey"`
	Predator string       `json:"predator"`
	Strength EdgeStrength `json:"strength"`
}

// Key returns a stable identifier for the edge.
func (e FoodWebEdge) Key() string {
	return e.Prey + "->" + e.Predator
}
