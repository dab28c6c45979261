// Package spatial exposes per-species historical and current geographic
// summaries and derived range metrics. Shift distances are curated input
// facts; this package checks them against a haversine estimate but never
// recomputes or overwrites them.
package spatial

import (
	"math"

	"marine-platform/internal/models"
)

const earthRadiusKm = 6371.0

// Model joins the spatial dataset with species records so affinity
// filtering can reuse the species classification.
type Model struct {
	records  []models.SpatialRecord
	affinity map[string]models.ThermalAffinity
}

// NewModel builds a model over the given records. Species records supply
// the thermal affinity for each spatial record's species key.
func NewModel(records []models.SpatialRecord, species []models.SpeciesRecord) *Model {
	affinity := make(map[string]models.ThermalAffinity, len(species))
	for _, s := range species {
		affinity[s.Species] = s.ThermalAffinity
	}
	return &Model{records: records, affinity: affinity}
}

// All returns every spatial record.
func (m *Model) All() []models.SpatialRecord {
	return m.records
}

// ForSpecies returns the record for one species, with ok=false when the
// species has no spatial summary.
func (m *Model) ForSpecies(name string) (models.SpatialRecord, bool) {
	for _, rec := range m.records {
		if rec.Species == name {
			return rec, true
		}
	}
	return models.SpatialRecord{}, false
}

// FilterByNames keeps records whose species is in the given set. An empty
// set yields an empty result.
func (m *Model) FilterByNames(names []string) []models.SpatialRecord {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := make([]models.SpatialRecord, 0, len(m.records))
	for _, rec := range m.records {
		if want[rec.Species] {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByAffinity keeps records whose species' thermal affinity is in
// the given set. An empty set yields an empty result.
func (m *Model) FilterByAffinity(set []models.ThermalAffinity) []models.SpatialRecord {
	want := make(map[models.ThermalAffinity]bool, len(set))
	for _, a := range set {
		want[a] = true
	}
	out := make([]models.SpatialRecord, 0, len(m.records))
	for _, rec := range m.records {
		if want[m.affinity[rec.Species]] {
			out = append(out, rec)
		}
	}
	return out
}

// RangeWidthChange is the change in latitudinal range extent, in degrees:
// (current north - current south) - (historical north - historical south).
// Negative values indicate range contraction.
func RangeWidthChange(rec models.SpatialRecord) float64 {
	return (rec.CurrentNorthLat - rec.CurrentSouthLat) - (rec.HistoricalNorthLat - rec.HistoricalSouthLat)
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ConsistencyFlag reports how far a record's stored shift distance
// deviates from the great-circle distance between its centroids.
type ConsistencyFlag struct {
	Species       string  `json:"species"`
	StoredKm      float64 `json:"stored_km"`
	EstimatedKm   float64 `json:"estimated_km"`
	DeviationFrac float64 `json:"deviation_frac"`
	Consistent    bool    `json:"consistent"`
}

// CheckConsistency flags records whose stored shift deviates from the
// haversine centroid distance by more than tolFrac (fractional, e.g.
// 0.15). Mismatches are surfaced, never corrected: whether they are
// curation or entry error is a question for the data owners.
func (m *Model) CheckConsistency(tolFrac float64) []ConsistencyFlag {
	flags := make([]ConsistencyFlag, 0, len(m.records))
	for _, rec := range m.records {
		est := HaversineKm(rec.HistoricalCentroid, rec.CurrentCentroid)
		var dev float64
		if est > 0 {
			dev = math.Abs(rec.ShiftKm-est) / est
		} else if rec.ShiftKm != 0 {
			dev = math.Inf(1)
		}
		flags = append(flags, ConsistencyFlag{
			Species:       rec.Species,
			StoredKm:      rec.ShiftKm,
			EstimatedKm:   est,
			DeviationFrac: dev,
			Consistent:    dev <= tolFrac,
		})
	}
	return flags
}
