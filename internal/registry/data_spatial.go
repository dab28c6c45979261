package registry

import "marine-platform/internal/models"

// Per-species geographic summaries derived from biomass-weighted centroid
// analysis of trawl survey data. Historical = 1968-1990 mean, current =
// 2010-2023 mean. ShiftKm and ShiftDirection are curated alongside the
// centroids, not derived from them.
func buildSpatialData() []models.SpatialRecord {
	return []models.SpatialRecord{
		{
			Species:            "Atlantic Cod",
			HistoricalCentroid: models.Coordinate{Lat: 43.10, Lon: -68.60},
			CurrentCentroid:    models.Coordinate{Lat: 42.75, Lon: -68.60},
			HistoricalSouthLat: 41.8, HistoricalNorthLat: 44.5,
			CurrentSouthLat: 42.2, CurrentNorthLat: 44.5,
			HistoricalHotspot: models.Hotspot{Name: "Stellwagen Bank", Lat: 42.37, Lon: -70.35},
			CurrentHotspot:    models.Hotspot{Name: "Cashes Ledge", Lat: 42.90, Lon: -68.95},
			ShiftKm:           39, ShiftDirection: "S",
		},
		{
			Species:            "Northern Shrimp",
			HistoricalCentroid: models.Coordinate{Lat: 43.60, Lon: -69.30},
			CurrentCentroid:    models.Coordinate{Lat: 43.15, Lon: -69.30},
			HistoricalSouthLat: 42.8, HistoricalNorthLat: 44.6,
			CurrentSouthLat: 43.6, CurrentNorthLat: 44.6,
			HistoricalHotspot: models.Hotspot{Name: "Wilkinson Basin", Lat: 42.60, Lon: -69.60},
			CurrentHotspot:    models.Hotspot{Name: "Penobscot Bay approaches", Lat: 44.00, Lon: -68.90},
			ShiftKm:           50, ShiftDirection: "S",
		},
		{
			Species:            "American Lobster (S. New England)",
			HistoricalCentroid: models.Coordinate{Lat: 41.30, Lon: -71.60},
			CurrentCentroid:    models.Coordinate{Lat: 41.05, Lon: -71.60},
			HistoricalSouthLat: 40.8, HistoricalNorthLat: 41.8,
			CurrentSouthLat: 40.9, CurrentNorthLat: 41.5,
			HistoricalHotspot: models.Hotspot{Name: "Long Island Sound", Lat: 41.10, Lon: -72.90},
			CurrentHotspot:    models.Hotspot{Name: "Block Island Sound", Lat: 41.20, Lon: -71.60},
			ShiftKm:           28, ShiftDirection: "S",
		},
		{
			Species:            "American Lobster (Maine)",
			HistoricalCentroid: models.Coordinate{Lat: 43.80, Lon: -69.00},
			CurrentCentroid:    models.Coordinate{Lat: 44.05, Lon: -69.00},
			HistoricalSouthLat: 43.0, HistoricalNorthLat: 44.8,
			CurrentSouthLat: 43.2, CurrentNorthLat: 45.1,
			HistoricalHotspot: models.Hotspot{Name: "Casco Bay", Lat: 43.65, Lon: -70.10},
			CurrentHotspot:    models.Hotspot{Name: "Penobscot Bay", Lat: 44.20, Lon: -68.90},
			ShiftKm:           28, ShiftDirection: "N",
		},
		{
			Species:            "Black Sea Bass",
			HistoricalCentroid: models.Coordinate{Lat: 40.20, Lon: -72.50},
			CurrentCentroid:    models.Coordinate{Lat: 41.55, Lon: -70.90},
			HistoricalSouthLat: 38.5, HistoricalNorthLat: 41.3,
			CurrentSouthLat: 39.0, CurrentNorthLat: 43.6,
			HistoricalHotspot: models.Hotspot{Name: "Hudson Canyon", Lat: 39.50, Lon: -72.40},
			CurrentHotspot:    models.Hotspot{Name: "Buzzards Bay", Lat: 41.50, Lon: -70.90},
			ShiftKm:           202, ShiftDirection: "NE",
		},
		{
			Species:            "Atlantic Mackerel",
			HistoricalCentroid: models.Coordinate{Lat: 42.50, Lon: -69.50},
			CurrentCentroid:    models.Coordinate{Lat: 43.45, Lon: -69.50},
			HistoricalSouthLat: 41.0, HistoricalNorthLat: 44.3,
			CurrentSouthLat: 42.0, CurrentNorthLat: 45.2,
			HistoricalHotspot: models.Hotspot{Name: "Jeffreys Ledge", Lat: 42.90, Lon: -70.20},
			CurrentHotspot:    models.Hotspot{Name: "Bay of Fundy approaches", Lat: 44.60, Lon: -66.80},
			ShiftKm:           106, ShiftDirection: "N",
		},
		{
			Species:            "Summer Flounder",
			HistoricalCentroid: models.Coordinate{Lat: 39.80, Lon: -73.20},
			CurrentCentroid:    models.Coordinate{Lat: 40.90, Lon: -72.00},
			HistoricalSouthLat: 38.0, HistoricalNorthLat: 41.2,
			CurrentSouthLat: 38.6, CurrentNorthLat: 42.9,
			HistoricalHotspot: models.Hotspot{Name: "Mid-Atlantic Bight", Lat: 39.00, Lon: -73.50},
			CurrentHotspot:    models.Hotspot{Name: "Nantucket Shoals", Lat: 41.10, Lon: -69.90},
			ShiftKm:           159, ShiftDirection: "NE",
		},
		{
			Species:            "Atlantic Herring",
			HistoricalCentroid: models.Coordinate{Lat: 43.30, Lon: -68.20},
			CurrentCentroid:    models.Coordinate{Lat: 43.75, Lon: -68.20},
			HistoricalSouthLat: 42.5, HistoricalNorthLat: 44.8,
			CurrentSouthLat: 43.1, CurrentNorthLat: 44.9,
			HistoricalHotspot: models.Hotspot{Name: "Georges Bank", Lat: 41.50, Lon: -67.50},
			CurrentHotspot:    models.Hotspot{Name: "Grand Manan Banks", Lat: 44.55, Lon: -66.90},
			ShiftKm:           50, ShiftDirection: "N",
		},
	}
}
