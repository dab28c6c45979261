package models

// YearWindow is an inclusive [Min, Max] year range.
type YearWindow struct {
	Min int `json:"min_year"`
	Max int `json:"max_year"`
}

// Contains reports whether year falls inside the window.
func (w YearWindow) Contains(year int) bool {
	return year >= w.Min && year <= w.Max
}

// ControlState carries the full set of user controls for one interaction.
// It is supplied fresh per request and never persisted; the zero values of
// the optional fields (SelectedSpecies, HighlightTarget) mean "none".
type ControlState struct {
	Unit            TemperatureUnit   `json:"unit"`
	YearWindow      YearWindow        `json:"year_window"`
	AffinityFilter  []ThermalAffinity `json:"affinity_filter"`
	SelectedSpecies string            `json:"selected_species,omitempty"`
	MapViewMode     MapViewMode       `json:"map_view_mode"`
	ColorMode       ColorMode         `json:"color_mode"`
	HighlightTarget string            `json:"highlight_target,omitempty"`
}

// DefaultControlState returns the controls a fresh session starts from:
// Celsius, the full SST year range, all affinities, no selection.
func DefaultControlState() ControlState {
	return ControlState{
		Unit:           Celsius,
		YearWindow:     YearWindow{Min: 1982, Max: 2024},
		AffinityFilter: AllAffinities(),
		MapViewMode:    MapCentroids,
		ColorMode:      ColorByTrend,
	}
}

// Validate checks the control state against the closed enum sets and the
// window ordering invariant. Empty affinity filters are legal here (they
// yield empty species views); callers that require at least one affinity
// enforce that with RequireAffinity.
func (s ControlState) Validate() error {
	if !s.Unit.Valid() {
		return &InvalidControlStateError{Field: "unit", Message: "must be C or F"}
	}
	if s.YearWindow.Min > s.YearWindow.Max {
		return &InvalidControlStateError{Field: "year_window", Message: "min year exceeds max year"}
	}
	for _, a := range s.AffinityFilter {
		if !a.Valid() {
			return &InvalidControlStateError{Field: "affinity_filter", Message: "unrecognized thermal affinity " + string(a)}
		}
	}
	if s.MapViewMode != "" && !s.MapViewMode.Valid() {
		return &InvalidControlStateError{Field: "map_view_mode", Message: "unrecognized map view mode " + string(s.MapViewMode)}
	}
	if s.ColorMode != "" && !s.ColorMode.Valid() {
		return &InvalidControlStateError{Field: "color_mode", Message: "unrecognized color mode " + string(s.ColorMode)}
	}
	return nil
}

// RequireAffinity validates the state and additionally rejects an empty
// affinity filter, for views where an empty filter is a caller mistake
// rather than a deliberate empty selection.
func (s ControlState) RequireAffinity() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if len(s.AffinityFilter) == 0 {
		return &InvalidControlStateError{Field: "affinity_filter", Message: "at least one thermal affinity is required"}
	}
	return nil
}
