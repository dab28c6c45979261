// Package pipeline turns raw registry records plus control state into the
// numeric series the presentation layer renders. Every function here is
// pure: no shared mutable state, safe under concurrent requests.
package pipeline

import (
	"marine-platform/internal/models"
)

// ConvertAbsolute converts an absolute Celsius temperature to the
// requested unit. F = C*9/5 + 32.
func ConvertAbsolute(celsius float64, unit models.TemperatureUnit) float64 {
	if unit == models.Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// ConvertDelta converts a Celsius anomaly or other temperature delta to
// the requested unit. Deltas scale without the +32 offset: F = C*1.8.
func ConvertDelta(celsius float64, unit models.TemperatureUnit) float64 {
	if unit == models.Fahrenheit {
		return celsius * 1.8
	}
	return celsius
}

// ConvertBack converts an absolute temperature in the given unit back to
// Celsius. Inverse of ConvertAbsolute.
func ConvertBack(value float64, unit models.TemperatureUnit) float64 {
	if unit == models.Fahrenheit {
		return (value - 32) * 5 / 9
	}
	return value
}

// FilterByYear returns the order-preserving subsequence of records whose
// year falls inside the inclusive window. An empty result is a valid
// outcome, not an error. yearOf extracts the year from a record.
func FilterByYear[T any](records []T, yearOf func(T) int, window models.YearWindow) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if window.Contains(yearOf(rec)) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByAffinity keeps species whose thermal affinity is in the given
// set. An empty set yields an empty result by definition.
func FilterByAffinity(records []models.SpeciesRecord, set []models.ThermalAffinity) []models.SpeciesRecord {
	want := make(map[models.ThermalAffinity]bool, len(set))
	for _, a := range set {
		want[a] = true
	}
	out := make([]models.SpeciesRecord, 0, len(records))
	for _, rec := range records {
		if want[rec.ThermalAffinity] {
			out = append(out, rec)
		}
	}
	return out
}

// RollingAverage computes a moving mean over the series. Positions where
// the full window does not fit are nil, never a partial average: with
// window=5 centered on a 43-point series, exactly the first two and last
// two positions are nil. A non-centered window trails (the window ends at
// the current index).
func RollingAverage(values []float64, window int, centered bool) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 || window > len(values) {
		return out
	}
	for i := range values {
		var start int
		if centered {
			start = i - window/2
		} else {
			start = i - window + 1
		}
		end := start + window
		if start < 0 || end > len(values) {
			continue
		}
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		avg := sum / float64(window)
		out[i] = &avg
	}
	return out
}
