package models

import (
	"errors"
	"testing"
)

func TestControlState_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ControlState)
		wantErr   bool
		wantField string
	}{
		{
			name:    "default state is valid",
			mutate:  func(s *ControlState) {},
			wantErr: false,
		},
		{
			name:    "fahrenheit is valid",
			mutate:  func(s *ControlState) { s.Unit = Fahrenheit },
			wantErr: false,
		},
		{
			name:      "unknown unit rejected",
			mutate:    func(s *ControlState) { s.Unit = "K" },
			wantErr:   true,
			wantField: "unit",
		},
		{
			name:      "inverted year window rejected",
			mutate:    func(s *ControlState) { s.YearWindow = YearWindow{Min: 2024, Max: 1982} },
			wantErr:   true,
			wantField: "year_window",
		},
		{
			name:    "single year window is valid",
			mutate:  func(s *ControlState) { s.YearWindow = YearWindow{Min: 2000, Max: 2000} },
			wantErr: false,
		},
		{
			name:      "unknown affinity rejected",
			mutate:    func(s *ControlState) { s.AffinityFilter = []ThermalAffinity{"Lukewarm"} },
			wantErr:   true,
			wantField: "affinity_filter",
		},
		{
			name:    "empty affinity filter passes plain validation",
			mutate:  func(s *ControlState) { s.AffinityFilter = nil },
			wantErr: false,
		},
		{
			name:      "unknown map view mode rejected",
			mutate:    func(s *ControlState) { s.MapViewMode = "heatmap" },
			wantErr:   true,
			wantField: "map_view_mode",
		},
		{
			name:      "unknown color mode rejected",
			mutate:    func(s *ControlState) { s.ColorMode = "rainbow" },
			wantErr:   true,
			wantField: "color_mode",
		},
		{
			name: "unset optional modes are valid",
			mutate: func(s *ControlState) {
				s.MapViewMode = ""
				s.ColorMode = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DefaultControlState()
			tt.mutate(&state)

			err := state.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var invalidErr *InvalidControlStateError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("error type = %T, want *InvalidControlStateError", err)
				}
				if invalidErr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", invalidErr.Field, tt.wantField)
				}
			}
		})
	}
}

func TestControlState_RequireAffinity(t *testing.T) {
	state := DefaultControlState()
	if err := state.RequireAffinity(); err != nil {
		t.Fatalf("RequireAffinity() on default state = %v, want nil", err)
	}

	state.AffinityFilter = nil
	err := state.RequireAffinity()
	if err == nil {
		t.Fatal("RequireAffinity() with empty filter should fail")
	}
	var invalidErr *InvalidControlStateError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error type = %T, want *InvalidControlStateError", err)
	}
	if invalidErr.Field != "affinity_filter" {
		t.Errorf("Field = %q, want %q", invalidErr.Field, "affinity_filter")
	}

	// Underlying validation failures still surface first
	state = DefaultControlState()
	state.Unit = "K"
	state.AffinityFilter = nil
	if err := state.RequireAffinity(); err == nil {
		t.Fatal("RequireAffinity() with invalid unit should fail")
	} else if errors.As(err, &invalidErr) && invalidErr.Field != "unit" {
		t.Errorf("Field = %q, want %q", invalidErr.Field, "unit")
	}
}

func TestDefaultControlState(t *testing.T) {
	state := DefaultControlState()

	if state.Unit != Celsius {
		t.Errorf("Unit = %v, want Celsius", state.Unit)
	}
	if state.YearWindow.Min != 1982 || state.YearWindow.Max != 2024 {
		t.Errorf("YearWindow = %+v, want 1982-2024", state.YearWindow)
	}
	if len(state.AffinityFilter) != 3 {
		t.Errorf("AffinityFilter has %d entries, want 3", len(state.AffinityFilter))
	}
	if state.SelectedSpecies != "" || state.HighlightTarget != "" {
		t.Error("fresh state should have no selection or highlight")
	}
	if state.MapViewMode != MapCentroids {
		t.Errorf("MapViewMode = %v, want centroids", state.MapViewMode)
	}
	if state.ColorMode != ColorByTrend {
		t.Errorf("ColorMode = %v, want population_trend", state.ColorMode)
	}
}

func TestYearWindow_Contains(t *testing.T) {
	w := YearWindow{Min: 1990, Max: 2000}
	for year, want := range map[int]bool{
		1989: false,
		1990: true,
		1995: true,
		2000: true,
		2001: false,
	} {
		if got := w.Contains(year); got != want {
			t.Errorf("Contains(%d) = %v, want %v", year, got, want)
		}
	}
}
