package services

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"marine-platform/internal/models"
	"marine-platform/internal/registry"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

// One collector per test binary; promauto registration is global.
var testCollector = metrics.NewCollector("view_service_test")

func newTestService(t *testing.T) *ViewService {
	t.Helper()
	logger := logging.NewStructuredLogger("test", "test", logging.ErrorLevel)
	logger.SetOutput(io.Discard)

	svc, err := NewViewService(registry.New(), logger, testCollector)
	if err != nil {
		t.Fatalf("NewViewService() error = %v", err)
	}
	return svc
}

func TestViewService_TemperatureView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.TemperatureView(ctx, models.DefaultControlState())
	if err != nil {
		t.Fatalf("TemperatureView() error = %v", err)
	}

	if len(view.Series) != 43 {
		t.Fatalf("series has %d points, want 43", len(view.Series))
	}
	for _, i := range []int{0, 1, 41, 42} {
		if view.Series[i].Rolling != nil {
			t.Errorf("series[%d].Rolling = %v, want nil at the window edge", i, *view.Series[i].Rolling)
		}
	}
	if view.Series[21].Rolling == nil {
		t.Fatal("interior rolling average should be defined")
	}

	// The smoothed curve is the five-year centered mean of absolute SST
	want := 0.0
	for _, pt := range view.Series[19:24] {
		want += pt.SST
	}
	want /= 5
	if math.Abs(*view.Series[21].Rolling-want) > 1e-9 {
		t.Errorf("series[21].Rolling = %v, want SST window mean %v", *view.Series[21].Rolling, want)
	}

	if view.Trend == nil {
		t.Fatal("trend should be defined over the full window")
	}
	if view.Trend.SlopePerDecade <= 0 {
		t.Errorf("SlopePerDecade = %v, want > 0 for a warming series", view.Trend.SlopePerDecade)
	}

	if len(view.Decades) != 5 {
		t.Errorf("decades = %d, want 5 for 1982-2024", len(view.Decades))
	}

	if view.RegimeShift == nil {
		t.Fatal("regime shift should be defined over the full window")
	}
	if view.RegimeShift.Delta <= 0 {
		t.Errorf("regime shift delta = %v, want > 0", view.RegimeShift.Delta)
	}
}

func TestViewService_TemperatureView_Fahrenheit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stateC := models.DefaultControlState()
	stateF := models.DefaultControlState()
	stateF.Unit = models.Fahrenheit

	viewC, err := svc.TemperatureView(ctx, stateC)
	if err != nil {
		t.Fatalf("TemperatureView(C) error = %v", err)
	}
	viewF, err := svc.TemperatureView(ctx, stateF)
	if err != nil {
		t.Fatalf("TemperatureView(F) error = %v", err)
	}

	// Absolute temperatures shift and scale, anomalies only scale
	for i := range viewC.Series {
		wantSST := viewC.Series[i].SST*9/5 + 32
		if math.Abs(viewF.Series[i].SST-wantSST) > 1e-9 {
			t.Fatalf("year %d: SST(F) = %v, want %v", viewF.Series[i].Year, viewF.Series[i].SST, wantSST)
		}
		wantAnom := viewC.Series[i].Anomaly * 1.8
		if math.Abs(viewF.Series[i].Anomaly-wantAnom) > 1e-9 {
			t.Fatalf("year %d: Anomaly(F) = %v, want %v", viewF.Series[i].Year, viewF.Series[i].Anomaly, wantAnom)
		}
		// The smoothed curve is absolute SST, so it shifts and scales
		c, f := viewC.Series[i].Rolling, viewF.Series[i].Rolling
		if (c == nil) != (f == nil) {
			t.Fatalf("year %d: rolling presence differs between units", viewF.Series[i].Year)
		}
		if c != nil && math.Abs(*f-(*c*9/5+32)) > 1e-9 {
			t.Fatalf("year %d: Rolling(F) = %v, want %v", viewF.Series[i].Year, *f, *c*9/5+32)
		}
	}

	// Trend of converted series equals converted trend
	if math.Abs(viewF.Trend.SlopePerDecade-viewC.Trend.SlopePerDecade*1.8) > 1e-6 {
		t.Errorf("SlopePerDecade(F) = %v, want %v",
			viewF.Trend.SlopePerDecade, viewC.Trend.SlopePerDecade*1.8)
	}
}

func TestViewService_TemperatureView_NarrowWindow(t *testing.T) {
	svc := newTestService(t)

	state := models.DefaultControlState()
	state.YearWindow = models.YearWindow{Min: 2000, Max: 2000}

	view, err := svc.TemperatureView(context.Background(), state)
	if err != nil {
		t.Fatalf("TemperatureView() error = %v", err)
	}
	if len(view.Series) != 1 {
		t.Fatalf("series has %d points, want 1", len(view.Series))
	}
	if view.Trend != nil {
		t.Error("trend should be omitted for a single-year window")
	}
	if view.RegimeShift != nil {
		t.Error("regime shift should be omitted when one side is empty")
	}
}

func TestViewService_TemperatureView_InvalidState(t *testing.T) {
	svc := newTestService(t)

	state := models.DefaultControlState()
	state.YearWindow = models.YearWindow{Min: 2024, Max: 1982}

	_, err := svc.TemperatureView(context.Background(), state)
	var invalidErr *models.InvalidControlStateError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want *InvalidControlStateError", err)
	}
}

func TestViewService_SpeciesView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	state := models.DefaultControlState()
	state.AffinityFilter = []models.ThermalAffinity{models.CoolWater}

	view, err := svc.SpeciesView(ctx, state)
	if err != nil {
		t.Fatalf("SpeciesView() error = %v", err)
	}
	if len(view.Species) != 4 {
		t.Fatalf("cool-water filter matched %d species, want 4", len(view.Species))
	}
	for i := 1; i < len(view.Species); i++ {
		if view.Species[i-1].LatShiftKmPerDecade < view.Species[i].LatShiftKmPerDecade {
			t.Errorf("species not sorted by shift rate: %q (%v) before %q (%v)",
				view.Species[i-1].Species, view.Species[i-1].LatShiftKmPerDecade,
				view.Species[i].Species, view.Species[i].LatShiftKmPerDecade)
		}
	}

	state.AffinityFilter = nil
	if _, err := svc.SpeciesView(ctx, state); err == nil {
		t.Error("empty affinity filter should be rejected")
	}
}

func TestViewService_SpeciesView_Selected(t *testing.T) {
	svc := newTestService(t)

	state := models.DefaultControlState()
	state.SelectedSpecies = "Atlantic Cod"

	view, err := svc.SpeciesView(context.Background(), state)
	if err != nil {
		t.Fatalf("SpeciesView() error = %v", err)
	}
	if view.Selected == nil {
		t.Fatal("selected species detail missing")
	}
	if view.Selected.Species != "Atlantic Cod" {
		t.Errorf("Selected.Species = %q, want Atlantic Cod", view.Selected.Species)
	}
	if view.SelectedRange == nil {
		t.Fatal("cod has a spatial record, SelectedRange should be set")
	}
	if view.SelectedRange.ShiftDirection != "S" {
		t.Errorf("cod ShiftDirection = %q, want S", view.SelectedRange.ShiftDirection)
	}
}

func TestViewService_LandingsView(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.LandingsView(context.Background(), models.DefaultControlState())
	if err != nil {
		t.Fatalf("LandingsView() error = %v", err)
	}

	if view.MainePeakYear != 2016 {
		t.Errorf("MainePeakYear = %d, want 2016", view.MainePeakYear)
	}
	if view.MaineFromPeak >= 0 {
		t.Errorf("MaineFromPeak = %v, want negative (landings are off peak)", view.MaineFromPeak)
	}
	if view.SNEDeclinePct >= -80 {
		t.Errorf("SNEDeclinePct = %v, want steeper than -80%%", view.SNEDeclinePct)
	}

	// Bottom temperature overlay follows the unit control
	stateF := models.DefaultControlState()
	stateF.Unit = models.Fahrenheit
	viewF, err := svc.LandingsView(context.Background(), stateF)
	if err != nil {
		t.Fatalf("LandingsView(F) error = %v", err)
	}
	for i := range view.Series {
		c, f := view.Series[i].SNEBottomTemp, viewF.Series[i].SNEBottomTemp
		if (c == nil) != (f == nil) {
			t.Fatalf("year %d: overlay presence differs between units", view.Series[i].Year)
		}
		if c != nil && math.Abs(*f-(*c*9/5+32)) > 1e-9 {
			t.Errorf("year %d: overlay(F) = %v, want %v", view.Series[i].Year, *f, *c*9/5+32)
		}
	}
}

func TestViewService_EcosystemView(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.EcosystemView(context.Background(), models.DefaultControlState())
	if err != nil {
		t.Fatalf("EcosystemView() error = %v", err)
	}
	if len(view.Series) != 25 {
		t.Fatalf("series has %d years, want 25", len(view.Series))
	}
	if len(view.Changes) != 5 {
		t.Fatalf("changes has %d indicators, want 5", len(view.Changes))
	}

	byName := make(map[string]IndicatorChange, len(view.Changes))
	for _, c := range view.Changes {
		byName[c.Indicator] = c
	}
	if c := byName["calanus_abundance_index"]; c.ChangePct >= 0 {
		t.Errorf("calanus change = %v, want negative", c.ChangePct)
	}
	if c := byName["marine_heatwave_days"]; c.ChangePct <= 0 {
		t.Errorf("heatwave days change = %v, want positive", c.ChangePct)
	}
}

func TestViewService_SpatialView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.SpatialView(ctx, models.DefaultControlState())
	if err != nil {
		t.Fatalf("SpatialView() error = %v", err)
	}
	if len(view.Entries) != 8 {
		t.Fatalf("entries = %d, want 8", len(view.Entries))
	}
	for _, flag := range view.Flags {
		if !flag.Consistent {
			t.Errorf("species %q flagged inconsistent: stored %v vs estimated %v",
				flag.Species, flag.StoredKm, flag.EstimatedKm)
		}
	}

	state := models.DefaultControlState()
	state.SelectedSpecies = "Atlantic Cod"
	view, err = svc.SpatialView(ctx, state)
	if err != nil {
		t.Fatalf("SpatialView(selected) error = %v", err)
	}
	if len(view.Entries) != 1 || view.Entries[0].Species != "Atlantic Cod" {
		t.Errorf("selection should narrow to cod, got %d entries", len(view.Entries))
	}
	if view.Entries[0].RangeWidthChange >= 0 {
		t.Errorf("cod RangeWidthChange = %v, want negative (contraction)", view.Entries[0].RangeWidthChange)
	}
}

func TestViewService_FoodWebView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	state := models.DefaultControlState()
	state.HighlightTarget = "herring"

	view, err := svc.FoodWebView(ctx, state)
	if err != nil {
		t.Fatalf("FoodWebView() error = %v", err)
	}
	if len(view.Nodes) != 16 {
		t.Errorf("nodes = %d, want 16", len(view.Nodes))
	}
	if len(view.Edges) != 26 {
		t.Errorf("edges = %d, want 26", len(view.Edges))
	}
	target := view.State.Nodes["herring"]
	if target.Opacity != 1.0 {
		t.Errorf("target opacity = %v, want 1.0", target.Opacity)
	}
	dimmed := view.State.Nodes["phytoplankton"]
	if dimmed.Opacity != 0.15 {
		t.Errorf("out-of-set opacity = %v, want 0.15", dimmed.Opacity)
	}

	state.HighlightTarget = "kraken"
	_, err = svc.FoodWebView(ctx, state)
	var nodeErr *models.UnknownNodeError
	if !errors.As(err, &nodeErr) {
		t.Fatalf("error = %v, want *models.UnknownNodeError", err)
	}
}
