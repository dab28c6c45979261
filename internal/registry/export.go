package registry

import (
	"strconv"

	"marine-platform/internal/models"
)

// ExportCSV flattens the named dataset into a header row plus data rows
// for the delimited-export collaborator. This is a pass-through of
// registry contents; no derived values are added.
func (r *Registry) ExportCSV(name string) ([]string, [][]string, error) {
	r.load()
	switch name {
	case DatasetSST:
		return exportTemperature(r.sst)
	case DatasetSpecies:
		return exportSpecies(r.species)
	case DatasetLandings:
		return exportLandings(r.landings)
	case DatasetEcosystem:
		return exportEcosystem(r.ecosystem)
	case DatasetSpatial:
		return exportSpatial(r.spatial)
	case DatasetFoodWebNodes:
		return exportFoodWebNodes(r.webNodes)
	case DatasetFoodWebEdges:
		return exportFoodWebEdges(r.webEdges)
	}
	return nil, nil, &models.UnknownDatasetError{Name: name}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func exportTemperature(recs []models.TemperatureRecord) ([]string, [][]string, error) {
	header := []string{"year", "sst_celsius", "anomaly_celsius"}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			strconv.Itoa(rec.Year), ftoa(rec.SSTCelsius), ftoa(rec.AnomalyCelsius),
		})
	}
	return header, rows, nil
}

func exportSpecies(recs []models.SpeciesRecord) ([]string, [][]string, error) {
	header := []string{
		"species", "scientific_name", "taxa_group", "thermal_affinity",
		"temp_min_c", "temp_max_c", "optimal_temp_c", "trend",
		"lat_shift_km_decade", "depth_shift_m_decade", "population_change_pct",
		"economic_importance", "economic_value_millions", "description",
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.Species, rec.ScientificName, rec.TaxaGroup, string(rec.ThermalAffinity),
			ftoa(rec.TempMinC), ftoa(rec.TempMaxC), ftoa(rec.OptimalTempC), string(rec.Trend),
			ftoa(rec.LatShiftKmPerDecade), ftoa(rec.DepthShiftMPerDecade), ftoa(rec.PopulationChangePct),
			rec.EconomicImportance, ftoa(rec.EconomicValueM), rec.Description,
		})
	}
	return header, rows, nil
}

func exportLandings(recs []models.LandingsRecord) ([]string, [][]string, error) {
	header := []string{
		"year", "maine_millions_lbs", "southern_ne_millions_lbs",
		"maine_value_millions", "sne_avg_bottom_temp_c",
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		temp := ""
		if rec.SNEBottomTempC != nil {
			temp = ftoa(*rec.SNEBottomTempC)
		}
		rows = append(rows, []string{
			strconv.Itoa(rec.Year), ftoa(rec.MaineMillionsLbs), ftoa(rec.SNEMillionsLbs),
			ftoa(rec.MaineValueM), temp,
		})
	}
	return header, rows, nil
}

func exportEcosystem(recs []models.EcosystemRecord) ([]string, [][]string, error) {
	header := []string{
		"year", "calanus_abundance_index", "warm_species_richness",
		"cold_species_richness", "marine_heatwave_days", "right_whale_sightings",
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			strconv.Itoa(rec.Year), ftoa(rec.CalanusAbundanceIndex), ftoa(rec.WarmSpeciesRichness),
			ftoa(rec.ColdSpeciesRichness), ftoa(rec.MarineHeatwaveDays), ftoa(rec.RightWhaleSightings),
		})
	}
	return header, rows, nil
}

func exportSpatial(recs []models.SpatialRecord) ([]string, [][]string, error) {
	header := []string{
		"species", "historical_lat", "historical_lon", "current_lat", "current_lon",
		"historical_south_lat", "historical_north_lat", "current_south_lat", "current_north_lat",
		"historical_hotspot", "current_hotspot", "shift_km", "shift_direction",
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.Species,
			ftoa(rec.HistoricalCentroid.Lat), ftoa(rec.HistoricalCentroid.Lon),
			ftoa(rec.CurrentCentroid.Lat), ftoa(rec.CurrentCentroid.Lon),
			ftoa(rec.HistoricalSouthLat), ftoa(rec.HistoricalNorthLat),
			ftoa(rec.CurrentSouthLat), ftoa(rec.CurrentNorthLat),
			rec.HistoricalHotspot.Name, rec.CurrentHotspot.Name,
			ftoa(rec.ShiftKm), rec.ShiftDirection,
		})
	}
	return header, rows, nil
}

func exportFoodWebNodes(nodes []models.FoodWebNode) ([]string, [][]string, error) {
	header := []string{"id", "label", "trophic_level", "category", "thermal_affinity", "trend", "base_color"}
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			n.ID, n.Label, ftoa(n.TrophicLevel), n.Category, string(n.Affinity), string(n.Trend), n.BaseColor,
		})
	}
	return header, rows, nil
}

func exportFoodWebEdges(edges []models.FoodWebEdge) ([]string, [][]string, error) {
	header := []string{"prey", "predator", "strength"}
	rows := make([][]string, 0, len(edges))
	for _, e := range edges {
		rows = append(rows, []string{e.Prey, e.Predator, string(e.Strength)})
	}
	return header, rows, nil
}
