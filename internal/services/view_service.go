package services

import (
	"context"
	"sort"

	"marine-platform/internal/foodweb"
	"marine-platform/internal/models"
	"marine-platform/internal/pipeline"
	"marine-platform/internal/registry"
	"marine-platform/internal/spatial"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

// Regime shift cutoffs for the SST baseline comparison: the warm regime
// that set in after the 2012 ocean heatwave.
const (
	regimeBeforeYear = 2012
	regimeSinceYear  = 2015
)

// shiftConsistencyTolerance is the fractional deviation allowed between a
// stored shift distance and the haversine centroid estimate before the
// record is flagged.
const shiftConsistencyTolerance = 0.15

// ViewService computes derived views from the registry datasets. Views
// are assembled per request from the control state; nothing is cached or
// mutated, so one service instance serves concurrent requests.
type ViewService struct {
	registry *registry.Registry
	spatial  *spatial.Model
	network  *foodweb.Network
	logger   *logging.StructuredLogger
	metrics  *metrics.Collector
}

// NewViewService creates a view service over a registry. The spatial
// model and trophic network are built once here from registry data.
func NewViewService(reg *registry.Registry, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) (*ViewService, error) {
	network, err := foodweb.NewNetwork(reg.FoodWebNodes(), reg.FoodWebEdges(), foodweb.DefaultLayout())
	if err != nil {
		return nil, err
	}
	return &ViewService{
		registry: reg,
		spatial:  spatial.NewModel(reg.Spatial(), reg.Species()),
		network:  network,
		logger:   logger,
		metrics:  metricsCollector,
	}, nil
}

// TemperaturePoint is one year of the temperature view series, in the
// requested unit. Rolling is nil where the smoothing window does not fit.
type TemperaturePoint struct {
	Year    int      `json:"year"`
	SST     float64  `json:"sst"`
	Anomaly float64  `json:"anomaly"`
	Rolling *float64 `json:"rolling,omitempty"`
}

// TemperatureView is the derived SST view: filtered series, smoothing,
// trend, decadal table, and regime shift summary.
type TemperatureView struct {
	Unit         models.TemperatureUnit   `json:"unit"`
	Series       []TemperaturePoint       `json:"series"`
	Trend        *pipeline.TrendFit       `json:"trend,omitempty"`
	Decades      []pipeline.DecadalBucket `json:"decades"`
	RegimeShift  *pipeline.BaselineShift  `json:"regime_shift,omitempty"`
	TotalWarming *float64                 `json:"total_warming,omitempty"`
}

// TemperatureView computes the SST view for the given controls: the
// year-filtered series converted to the requested unit, a five-year
// centered rolling mean of the SST, an OLS warming trend, decadal
// aggregates, and the pre-2012 vs post-2015 regime comparison. Trend and
// regime fields are omitted rather than failing when the window is too
// narrow to define them.
func (s *ViewService) TemperatureView(ctx context.Context, state models.ControlState) (*TemperatureView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("temperature"))
	defer timer.ObserveDuration()

	if err := state.Validate(); err != nil {
		s.metrics.RecordViewError("temperature", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetSST).Inc()

	records := pipeline.FilterByYear(s.registry.Temperature(),
		func(r models.TemperatureRecord) int { return r.Year }, state.YearWindow)

	years := make([]int, len(records))
	ssts := make([]float64, len(records))
	anomalies := make([]float64, len(records))
	for i, rec := range records {
		years[i] = rec.Year
		ssts[i] = rec.SSTCelsius
		anomalies[i] = rec.AnomalyCelsius
	}
	// Smoothing applies to the absolute SST series; the anomaly series
	// stays raw for the trend and regime comparisons.
	rolling := pipeline.RollingAverage(ssts, 5, true)

	series := make([]TemperaturePoint, len(records))
	for i, rec := range records {
		pt := TemperaturePoint{
			Year:    rec.Year,
			SST:     pipeline.ConvertAbsolute(rec.SSTCelsius, state.Unit),
			Anomaly: pipeline.ConvertDelta(rec.AnomalyCelsius, state.Unit),
		}
		if rolling[i] != nil {
			v := pipeline.ConvertAbsolute(*rolling[i], state.Unit)
			pt.Rolling = &v
		}
		series[i] = pt
	}

	view := &TemperatureView{
		Unit:    state.Unit,
		Series:  series,
		Decades: convertDecades(pipeline.DecadalAggregate(records), state.Unit),
	}

	if fit, err := pipeline.LinearTrend(years, anomalies); err == nil {
		converted := pipeline.TrendFit{
			Slope:          pipeline.ConvertDelta(fit.Slope, state.Unit),
			Intercept:      pipeline.ConvertDelta(fit.Intercept, state.Unit),
			SlopePerDecade: pipeline.ConvertDelta(fit.SlopePerDecade, state.Unit),
		}
		view.Trend = &converted
		warming := converted.Slope * float64(state.YearWindow.Max-state.YearWindow.Min)
		view.TotalWarming = &warming
	}

	if shift, err := pipeline.BaselineComparison(years, anomalies, regimeBeforeYear, regimeSinceYear); err == nil {
		converted := pipeline.BaselineShift{
			BeforeYear: shift.BeforeYear,
			SinceYear:  shift.SinceYear,
			MeanBefore: pipeline.ConvertDelta(shift.MeanBefore, state.Unit),
			MeanSince:  pipeline.ConvertDelta(shift.MeanSince, state.Unit),
			Delta:      pipeline.ConvertDelta(shift.Delta, state.Unit),
		}
		view.RegimeShift = &converted
	}

	s.logger.Debug(ctx, "[VIEW_TEMPERATURE] Temperature view computed", logging.Fields{
		"unit":   string(state.Unit),
		"years":  len(series),
		"window": state.YearWindow,
	})
	return view, nil
}

// convertDecades maps decadal bucket temperatures to the requested unit.
// Mean SST is absolute; the anomaly fields are deltas.
func convertDecades(buckets []pipeline.DecadalBucket, unit models.TemperatureUnit) []pipeline.DecadalBucket {
	out := make([]pipeline.DecadalBucket, len(buckets))
	for i, b := range buckets {
		b.MeanSST = pipeline.ConvertAbsolute(b.MeanSST, unit)
		b.MeanAnomaly = pipeline.ConvertDelta(b.MeanAnomaly, unit)
		b.MaxAnomaly = pipeline.ConvertDelta(b.MaxAnomaly, unit)
		out[i] = b
	}
	return out
}

// SpeciesView is the affinity-filtered species response view.
type SpeciesView struct {
	Species       []models.SpeciesRecord `json:"species"`
	ExpandingN    int                    `json:"expanding_count"`
	DecliningN    int                    `json:"declining_count"`
	Selected      *models.SpeciesRecord  `json:"selected,omitempty"`
	SelectedRange *models.SpatialRecord  `json:"selected_range,omitempty"`
}

// SpeciesView computes the species view: records matching the affinity
// filter, sorted by latitudinal shift rate descending so the fastest
// movers lead, with summary counts and an optional selected-species
// detail joined with its spatial record when one exists.
func (s *ViewService) SpeciesView(ctx context.Context, state models.ControlState) (*SpeciesView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("species"))
	defer timer.ObserveDuration()

	if err := state.RequireAffinity(); err != nil {
		s.metrics.RecordViewError("species", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetSpecies).Inc()

	filtered := pipeline.FilterByAffinity(s.registry.Species(), state.AffinityFilter)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].LatShiftKmPerDecade > filtered[j].LatShiftKmPerDecade
	})

	view := &SpeciesView{Species: filtered}
	for _, rec := range filtered {
		switch rec.Trend {
		case models.TrendExpanding, models.TrendShiftingNorth:
			view.ExpandingN++
		case models.TrendDeclining, models.TrendCollapsed:
			view.DecliningN++
		}
	}

	if state.SelectedSpecies != "" {
		if sel := s.registry.SpeciesByName(state.SelectedSpecies); sel != nil {
			view.Selected = sel
			if rng, ok := s.spatial.ForSpecies(state.SelectedSpecies); ok {
				view.SelectedRange = &rng
			}
		}
	}

	s.logger.Debug(ctx, "[VIEW_SPECIES] Species view computed", logging.Fields{
		"affinities": len(state.AffinityFilter),
		"matched":    len(filtered),
		"selected":   state.SelectedSpecies,
	})
	return view, nil
}

// LandingsPoint is one year of the lobster landings view. The bottom
// temperature overlay is in the requested unit and nil for unsampled
// years.
type LandingsPoint struct {
	Year          int      `json:"year"`
	MaineLbs      float64  `json:"maine_millions_lbs"`
	SNELbs        float64  `json:"southern_ne_millions_lbs"`
	MaineValueM   float64  `json:"maine_value_millions"`
	SNEBottomTemp *float64 `json:"sne_bottom_temp,omitempty"`
}

// LandingsView is the derived regional lobster landings view.
type LandingsView struct {
	Unit          models.TemperatureUnit `json:"unit"`
	Series        []LandingsPoint        `json:"series"`
	MainePeakYear int                    `json:"maine_peak_year"`
	MainePeakLbs  float64                `json:"maine_peak_millions_lbs"`
	MaineFromPeak float64                `json:"maine_pct_from_peak"`
	SNEDeclinePct float64                `json:"sne_decline_pct"`
}

// LandingsView computes the lobster landings view: the year-filtered
// regional series with the Southern New England bottom temperature
// overlay, the Maine peak and the latest year's percent change from it,
// and the SNE collapse measured first to last year in the window.
func (s *ViewService) LandingsView(ctx context.Context, state models.ControlState) (*LandingsView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("landings"))
	defer timer.ObserveDuration()

	if err := state.Validate(); err != nil {
		s.metrics.RecordViewError("landings", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetLandings).Inc()

	records := pipeline.FilterByYear(s.registry.Landings(),
		func(r models.LandingsRecord) int { return r.Year }, state.YearWindow)

	view := &LandingsView{Unit: state.Unit, Series: make([]LandingsPoint, len(records))}
	for i, rec := range records {
		pt := LandingsPoint{
			Year:        rec.Year,
			MaineLbs:    rec.MaineMillionsLbs,
			SNELbs:      rec.SNEMillionsLbs,
			MaineValueM: rec.MaineValueM,
		}
		if rec.SNEBottomTempC != nil {
			v := pipeline.ConvertAbsolute(*rec.SNEBottomTempC, state.Unit)
			pt.SNEBottomTemp = &v
		}
		view.Series[i] = pt

		if rec.MaineMillionsLbs > view.MainePeakLbs {
			view.MainePeakLbs = rec.MaineMillionsLbs
			view.MainePeakYear = rec.Year
		}
	}

	if n := len(records); n > 0 {
		last := records[n-1]
		if view.MainePeakLbs > 0 {
			view.MaineFromPeak = (last.MaineMillionsLbs - view.MainePeakLbs) / view.MainePeakLbs * 100
		}
		first := records[0]
		if first.SNEMillionsLbs > 0 {
			view.SNEDeclinePct = (last.SNEMillionsLbs - first.SNEMillionsLbs) / first.SNEMillionsLbs * 100
		}
	}

	s.logger.Debug(ctx, "[VIEW_LANDINGS] Landings view computed", logging.Fields{
		"years":     len(records),
		"peak_year": view.MainePeakYear,
	})
	return view, nil
}

// IndicatorChange is the percent change of one ecosystem indicator from
// the first to the last year of the window.
type IndicatorChange struct {
	Indicator string  `json:"indicator"`
	First     float64 `json:"first"`
	Last      float64 `json:"last"`
	ChangePct float64 `json:"change_pct"`
}

// EcosystemView is the derived ecosystem indicators view.
type EcosystemView struct {
	Series  []models.EcosystemRecord `json:"series"`
	Changes []IndicatorChange        `json:"changes"`
}

// EcosystemView computes the ecosystem view: the year-filtered indicator
// series plus per-indicator percent change over the window. Indicators
// whose first value is zero report an absolute change with ChangePct 0
// rather than dividing by zero.
func (s *ViewService) EcosystemView(ctx context.Context, state models.ControlState) (*EcosystemView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("ecosystem"))
	defer timer.ObserveDuration()

	if err := state.Validate(); err != nil {
		s.metrics.RecordViewError("ecosystem", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetEcosystem).Inc()

	records := pipeline.FilterByYear(s.registry.Ecosystem(),
		func(r models.EcosystemRecord) int { return r.Year }, state.YearWindow)

	view := &EcosystemView{Series: records}
	if n := len(records); n > 1 {
		first, last := records[0], records[n-1]
		indicators := []struct {
			name        string
			first, last float64
		}{
			{"calanus_abundance_index", first.CalanusAbundanceIndex, last.CalanusAbundanceIndex},
			{"warm_species_richness", first.WarmSpeciesRichness, last.WarmSpeciesRichness},
			{"cold_species_richness", first.ColdSpeciesRichness, last.ColdSpeciesRichness},
			{"marine_heatwave_days", first.MarineHeatwaveDays, last.MarineHeatwaveDays},
			{"right_whale_sightings", first.RightWhaleSightings, last.RightWhaleSightings},
		}
		for _, ind := range indicators {
			change := IndicatorChange{Indicator: ind.name, First: ind.first, Last: ind.last}
			if ind.first != 0 {
				change.ChangePct = (ind.last - ind.first) / ind.first * 100
			}
			view.Changes = append(view.Changes, change)
		}
	}

	s.logger.Debug(ctx, "[VIEW_ECOSYSTEM] Ecosystem view computed", logging.Fields{
		"years": len(records),
	})
	return view, nil
}

// SpatialEntry is one species' spatial summary with derived range
// metrics attached.
type SpatialEntry struct {
	models.SpatialRecord
	RangeWidthChange float64 `json:"range_width_change_deg"`
}

// SpatialView is the derived range shift view.
type SpatialView struct {
	Mode    models.MapViewMode        `json:"mode"`
	Entries []SpatialEntry            `json:"entries"`
	Flags   []spatial.ConsistencyFlag `json:"consistency_flags"`
}

// SpatialView computes the range shift view: spatial records matching
// the affinity filter (narrowed further when a species is selected),
// each with its latitudinal range width change, plus consistency flags
// at the standard tolerance. The map view mode passes through so the
// renderer knows which geometry to draw.
func (s *ViewService) SpatialView(ctx context.Context, state models.ControlState) (*SpatialView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("spatial"))
	defer timer.ObserveDuration()

	if err := state.RequireAffinity(); err != nil {
		s.metrics.RecordViewError("spatial", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetSpatial).Inc()

	var records []models.SpatialRecord
	if state.SelectedSpecies != "" {
		records = s.spatial.FilterByNames([]string{state.SelectedSpecies})
	} else {
		records = s.spatial.FilterByAffinity(state.AffinityFilter)
	}

	view := &SpatialView{
		Mode:    state.MapViewMode,
		Entries: make([]SpatialEntry, len(records)),
		Flags:   s.spatial.CheckConsistency(shiftConsistencyTolerance),
	}
	for i, rec := range records {
		view.Entries[i] = SpatialEntry{
			SpatialRecord:    rec,
			RangeWidthChange: spatial.RangeWidthChange(rec),
		}
	}

	s.logger.Debug(ctx, "[VIEW_SPATIAL] Spatial view computed", logging.Fields{
		"mode":    string(state.MapViewMode),
		"entries": len(records),
	})
	return view, nil
}

// FoodWebView is the derived trophic network view: the node and edge
// data alongside the computed per-element render state.
type FoodWebView struct {
	Nodes []models.FoodWebNode `json:"nodes"`
	Edges []models.FoodWebEdge `json:"edges"`
	State *foodweb.ViewState   `json:"state"`
}

// FoodWebView computes the trophic network view for the current
// highlight target and color mode. An unknown highlight target fails
// with *models.UnknownNodeError.
func (s *ViewService) FoodWebView(ctx context.Context, state models.ControlState) (*FoodWebView, error) {
	timer := s.metrics.NewTimer(s.metrics.ViewComputationDuration.WithLabelValues("foodweb"))
	defer timer.ObserveDuration()

	if err := state.Validate(); err != nil {
		s.metrics.RecordViewError("foodweb", "invalid_control_state")
		return nil, err
	}
	s.metrics.DatasetAccessTotal.WithLabelValues(registry.DatasetFoodWebNodes).Inc()

	mode := state.ColorMode
	if mode == "" {
		mode = models.ColorByTrend
	}
	viewState, err := s.network.ComputeViewState(state.HighlightTarget, mode)
	if err != nil {
		s.metrics.RecordViewError("foodweb", "unknown_node")
		return nil, err
	}

	s.logger.Debug(ctx, "[VIEW_FOODWEB] Food web view computed", logging.Fields{
		"highlight":  state.HighlightTarget,
		"color_mode": string(mode),
	})
	return &FoodWebView{
		Nodes: s.network.Nodes(),
		Edges: s.network.Edges(),
		State: viewState,
	}, nil
}
