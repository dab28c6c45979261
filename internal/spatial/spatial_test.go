package spatial

import (
	"math"
	"testing"

	"marine-platform/internal/models"
	"marine-platform/internal/registry"
)

func newModel() *Model {
	r := registry.New()
	return NewModel(r.Spatial(), r.Species())
}

func TestForSpecies(t *testing.T) {
	m := newModel()

	rec, ok := m.ForSpecies("Atlantic Cod")
	if !ok {
		t.Fatal("Atlantic Cod should have a spatial record")
	}
	if rec.ShiftDirection != "S" {
		t.Errorf("cod shift direction = %q, want S", rec.ShiftDirection)
	}

	if _, ok := m.ForSpecies("Giant Squid"); ok {
		t.Error("unexpected spatial record for absent species")
	}
}

func TestFilterByAffinity(t *testing.T) {
	m := newModel()

	cold := m.FilterByAffinity([]models.ThermalAffinity{models.ColdWater})
	wantCold := map[string]bool{
		"Atlantic Cod":     true,
		"Northern Shrimp":  true,
		"Atlantic Herring": true,
	}
	if len(cold) != len(wantCold) {
		t.Fatalf("cold-water count = %d, want %d", len(cold), len(wantCold))
	}
	for _, rec := range cold {
		if !wantCold[rec.Species] {
			t.Errorf("unexpected cold-water record %q", rec.Species)
		}
	}

	if got := m.FilterByAffinity(nil); len(got) != 0 {
		t.Errorf("empty affinity set yielded %d records", len(got))
	}
}

func TestFilterByNames(t *testing.T) {
	m := newModel()

	got := m.FilterByNames([]string{"Black Sea Bass", "Summer Flounder"})
	if len(got) != 2 {
		t.Fatalf("count = %d, want 2", len(got))
	}
	if got := m.FilterByNames(nil); len(got) != 0 {
		t.Errorf("empty name set yielded %d records", len(got))
	}
}

func TestRangeWidthChange(t *testing.T) {
	m := newModel()

	// Black sea bass expanded; cod contracted.
	bass, _ := m.ForSpecies("Black Sea Bass")
	if RangeWidthChange(bass) <= 0 {
		t.Errorf("black sea bass range width change = %v, want > 0", RangeWidthChange(bass))
	}
	cod, _ := m.ForSpecies("Atlantic Cod")
	if RangeWidthChange(cod) >= 0 {
		t.Errorf("cod range width change = %v, want < 0", RangeWidthChange(cod))
	}
}

func TestHaversineKm(t *testing.T) {
	// One degree of latitude is ~111.2 km anywhere on the sphere.
	a := models.Coordinate{Lat: 43.0, Lon: -69.0}
	b := models.Coordinate{Lat: 44.0, Lon: -69.0}
	got := HaversineKm(a, b)
	if math.Abs(got-111.2) > 1.0 {
		t.Errorf("1 degree lat = %v km, want ~111.2", got)
	}
	if HaversineKm(a, a) != 0 {
		t.Error("zero distance expected for identical points")
	}
}

func TestCheckConsistency_BundledDataWithinTolerance(t *testing.T) {
	flags := newModel().CheckConsistency(0.15)
	if len(flags) == 0 {
		t.Fatal("no consistency flags returned")
	}
	for _, f := range flags {
		if !f.Consistent {
			t.Errorf("%s: stored %v km vs estimated %.1f km (deviation %.2f)",
				f.Species, f.StoredKm, f.EstimatedKm, f.DeviationFrac)
		}
	}
}

func TestCheckConsistency_FlagsMismatch(t *testing.T) {
	rec := models.SpatialRecord{
		Species:            "Test",
		HistoricalCentroid: models.Coordinate{Lat: 43.0, Lon: -69.0},
		CurrentCentroid:    models.Coordinate{Lat: 44.0, Lon: -69.0},
		ShiftKm:            500, // far from the ~111 km centroid distance
	}
	m := NewModel([]models.SpatialRecord{rec}, nil)
	flags := m.CheckConsistency(0.15)
	if len(flags) != 1 || flags[0].Consistent {
		t.Error("expected the inflated shift to be flagged inconsistent")
	}
}
