package pipeline

import (
	"errors"
	"math"
	"testing"

	"marine-platform/internal/models"
	"marine-platform/internal/registry"
)

const tolerance = 1e-9

func yearOfTemp(r models.TemperatureRecord) int { return r.Year }

func TestConvertAbsolute_RoundTrip(t *testing.T) {
	for _, c := range []float64{-40, 0, 9.8, 12.3, 100} {
		f := ConvertAbsolute(c, models.Fahrenheit)
		back := ConvertBack(f, models.Fahrenheit)
		if math.Abs(back-c) > tolerance {
			t.Errorf("round trip %v -> %v -> %v", c, f, back)
		}
	}
	if got := ConvertAbsolute(0, models.Fahrenheit); got != 32 {
		t.Errorf("ConvertAbsolute(0, F) = %v, want 32", got)
	}
}

func TestConvertDelta_NoOffset(t *testing.T) {
	if got := ConvertDelta(0, models.Fahrenheit); got != 0 {
		t.Errorf("ConvertDelta(0, F) = %v, want 0: deltas must not gain the +32 offset", got)
	}
	if got := ConvertDelta(1, models.Fahrenheit); math.Abs(got-1.8) > tolerance {
		t.Errorf("ConvertDelta(1, F) = %v, want 1.8", got)
	}
	if got := ConvertDelta(-0.5, models.Celsius); got != -0.5 {
		t.Errorf("ConvertDelta(-0.5, C) = %v, want -0.5", got)
	}
}

func TestFilterByYear(t *testing.T) {
	sst := registry.New().Temperature()

	tests := []struct {
		name      string
		window    models.YearWindow
		wantLen   int
		wantFirst int
		wantLast  int
	}{
		{"full range", models.YearWindow{Min: 1982, Max: 2024}, 43, 1982, 2024},
		{"interior window", models.YearWindow{Min: 1990, Max: 1999}, 10, 1990, 1999},
		{"single year", models.YearWindow{Min: 2012, Max: 2012}, 1, 2012, 2012},
		{"disjoint window", models.YearWindow{Min: 1950, Max: 1960}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByYear(sst, yearOfTemp, tt.window)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if got[0].Year != tt.wantFirst || got[len(got)-1].Year != tt.wantLast {
				t.Errorf("span = %d-%d, want %d-%d", got[0].Year, got[len(got)-1].Year, tt.wantFirst, tt.wantLast)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Year != got[i-1].Year+1 {
					t.Errorf("result not contiguous at %d", i)
				}
			}
		})
	}
}

func TestFilterByAffinity(t *testing.T) {
	species := registry.New().Species()

	cool := FilterByAffinity(species, []models.ThermalAffinity{models.CoolWater})
	want := map[string]bool{
		"American Lobster (S. New England)": true,
		"American Lobster (Maine)":          true,
		"Atlantic Mackerel":                 true,
		"Jonah Crab":                        true,
	}
	if len(cool) != len(want) {
		t.Fatalf("cool-water count = %d, want %d", len(cool), len(want))
	}
	for _, rec := range cool {
		if !want[rec.Species] {
			t.Errorf("unexpected cool-water species %q", rec.Species)
		}
		if rec.ThermalAffinity != models.CoolWater {
			t.Errorf("%q leaked affinity %q", rec.Species, rec.ThermalAffinity)
		}
	}

	if got := FilterByAffinity(species, nil); len(got) != 0 {
		t.Errorf("empty affinity set yielded %d records, want 0", len(got))
	}
}

func TestRollingAverage_EdgeUndefined(t *testing.T) {
	sst := registry.New().Temperature()
	values := make([]float64, len(sst))
	for i, rec := range sst {
		values[i] = rec.SSTCelsius
	}

	avg := RollingAverage(values, 5, true)
	if len(avg) != 43 {
		t.Fatalf("len = %d, want 43", len(avg))
	}
	for _, i := range []int{0, 1, 41, 42} {
		if avg[i] != nil {
			t.Errorf("position %d should be undefined, got %v", i, *avg[i])
		}
	}
	for i := 2; i <= 40; i++ {
		if avg[i] == nil {
			t.Errorf("position %d should be defined", i)
		}
	}

	// Spot-check the first defined value against a hand sum.
	wantFirst := (values[0] + values[1] + values[2] + values[3] + values[4]) / 5
	if math.Abs(*avg[2]-wantFirst) > tolerance {
		t.Errorf("avg[2] = %v, want %v", *avg[2], wantFirst)
	}
}

func TestRollingAverage_Trailing(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	avg := RollingAverage(values, 2, false)
	if avg[0] != nil {
		t.Error("trailing window: position 0 should be undefined")
	}
	for i, want := range []float64{1.5, 2.5, 3.5} {
		got := avg[i+1]
		if got == nil || math.Abs(*got-want) > tolerance {
			t.Errorf("avg[%d] = %v, want %v", i+1, got, want)
		}
	}
}

func TestRollingAverage_WindowLargerThanSeries(t *testing.T) {
	avg := RollingAverage([]float64{1, 2}, 5, true)
	for i, v := range avg {
		if v != nil {
			t.Errorf("position %d should be undefined for oversized window", i)
		}
	}
}

func TestLinearTrend_WarmingSlope(t *testing.T) {
	sst := registry.New().Temperature()
	years := make([]int, len(sst))
	celsius := make([]float64, len(sst))
	for i, rec := range sst {
		years[i] = rec.Year
		celsius[i] = rec.SSTCelsius
	}

	fit, err := LinearTrend(years, celsius)
	if err != nil {
		t.Fatalf("LinearTrend: %v", err)
	}
	if fit.Slope <= 0 {
		t.Errorf("slope = %v, want > 0 for the warming series", fit.Slope)
	}
	if math.Abs(fit.SlopePerDecade-fit.Slope*10) > tolerance {
		t.Errorf("SlopePerDecade = %v, want slope*10 = %v", fit.SlopePerDecade, fit.Slope*10)
	}
}

func TestLinearTrend_CommutesWithConversion(t *testing.T) {
	sst := registry.New().Temperature()
	years := make([]int, len(sst))
	celsius := make([]float64, len(sst))
	fahrenheit := make([]float64, len(sst))
	for i, rec := range sst {
		years[i] = rec.Year
		celsius[i] = rec.SSTCelsius
		fahrenheit[i] = ConvertAbsolute(rec.SSTCelsius, models.Fahrenheit)
	}

	fitC, err := LinearTrend(years, celsius)
	if err != nil {
		t.Fatal(err)
	}
	fitF, err := LinearTrend(years, fahrenheit)
	if err != nil {
		t.Fatal(err)
	}

	// Slopes are deltas: the F slope equals the C slope scaled by 1.8.
	if math.Abs(fitF.Slope-ConvertDelta(fitC.Slope, models.Fahrenheit)) > 1e-6 {
		t.Errorf("F slope = %v, C slope * 1.8 = %v", fitF.Slope, fitC.Slope*1.8)
	}
}

func TestLinearTrend_Undefined(t *testing.T) {
	_, err := LinearTrend([]int{2020, 2020, 2020}, []float64{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for a single distinct year")
	}
	var undef *models.UndefinedAggregateError
	if !errors.As(err, &undef) {
		t.Fatalf("error = %T, want *models.UndefinedAggregateError", err)
	}
}

func TestDecadalAggregate(t *testing.T) {
	buckets := DecadalAggregate(registry.New().Temperature())

	wantDecades := []int{1980, 1990, 2000, 2010, 2020}
	if len(buckets) != len(wantDecades) {
		t.Fatalf("bucket count = %d, want %d", len(buckets), len(wantDecades))
	}
	for i, b := range buckets {
		if b.Decade != wantDecades[i] {
			t.Errorf("bucket %d decade = %d, want %d", i, b.Decade, wantDecades[i])
		}
		if b.Count == 0 {
			t.Errorf("decade %d has no records", b.Decade)
		}
		if i > 0 && b.MeanSST < buckets[i-1].MeanSST {
			t.Errorf("mean SST decreased from %ds to %ds", buckets[i-1].Decade, b.Decade)
		}
	}
	if buckets[0].Label != "1980s" {
		t.Errorf("label = %q, want %q", buckets[0].Label, "1980s")
	}
}

func TestBaselineComparison(t *testing.T) {
	sst := registry.New().Temperature()
	years := make([]int, len(sst))
	anomalies := make([]float64, len(sst))
	for i, rec := range sst {
		years[i] = rec.Year
		anomalies[i] = rec.AnomalyCelsius
	}

	shift, err := BaselineComparison(years, anomalies, 2012, 2015)
	if err != nil {
		t.Fatalf("BaselineComparison: %v", err)
	}
	if shift.MeanSince <= shift.MeanBefore {
		t.Errorf("mean since 2015 (%v) should exceed pre-2012 mean (%v)", shift.MeanSince, shift.MeanBefore)
	}
	if math.Abs(shift.Delta-(shift.MeanSince-shift.MeanBefore)) > tolerance {
		t.Errorf("delta inconsistent with means")
	}

	_, err = BaselineComparison(years, anomalies, 1900, 2015)
	var undef *models.UndefinedAggregateError
	if !errors.As(err, &undef) {
		t.Fatalf("empty before-side: error = %T, want *models.UndefinedAggregateError", err)
	}
}
