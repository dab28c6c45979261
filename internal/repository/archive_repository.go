package repository

import (
	"context"
	"fmt"

	"marine-platform/internal/models"
	"marine-platform/pkg/database"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

// ArchiveRepository mirrors the bundled datasets into the relational
// archive for downstream analysts. Writes are idempotent upserts keyed
// on each dataset's natural key; the in-memory registry remains the
// source of truth for the computation core.
type ArchiveRepository interface {
	UpsertTemperature(ctx context.Context, recs []models.TemperatureRecord) (int, error)
	UpsertSpecies(ctx context.Context, recs []models.SpeciesRecord) (int, error)
	UpsertLandings(ctx context.Context, recs []models.LandingsRecord) (int, error)
	UpsertEcosystem(ctx context.Context, recs []models.EcosystemRecord) (int, error)
	UpsertSpatial(ctx context.Context, recs []models.SpatialRecord) (int, error)
	UpsertFoodWeb(ctx context.Context, nodes []models.FoodWebNode, edges []models.FoodWebEdge) (int, error)
	CountRows(ctx context.Context, table string) (int, error)
	HealthCheck(ctx context.Context) error
}

// archiveRepository implements ArchiveRepository
type archiveRepository struct {
	db      *database.PostgresDB
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewArchiveRepository creates a new archive repository
func NewArchiveRepository(db *database.PostgresDB, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) ArchiveRepository {
	return &archiveRepository{
		db:      db,
		logger:  logger,
		metrics: metricsCollector,
	}
}

func (r *archiveRepository) UpsertTemperature(ctx context.Context, recs []models.TemperatureRecord) (int, error) {
	query := `
		INSERT INTO sst_annual (year, sst_celsius, anomaly_celsius)
		VALUES ($1, $2, $3)
		ON CONFLICT (year) DO UPDATE SET
			sst_celsius = EXCLUDED.sst_celsius,
			anomaly_celsius = EXCLUDED.anomaly_celsius
	`
	count := 0
	for _, rec := range recs {
		if _, err := r.db.ExecContext(ctx, "upsert_sst", query, rec.Year, rec.SSTCelsius, rec.AnomalyCelsius); err != nil {
			return count, fmt.Errorf("failed to upsert SST record for %d: %w", rec.Year, err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("sst").Add(float64(count))
	return count, nil
}

func (r *archiveRepository) UpsertSpecies(ctx context.Context, recs []models.SpeciesRecord) (int, error) {
	query := `
		INSERT INTO species_responses (
			species, scientific_name, taxa_group, thermal_affinity,
			temp_min_c, temp_max_c, optimal_temp_c, trend,
			lat_shift_km_decade, depth_shift_m_decade, population_change_pct,
			economic_importance, economic_value_millions, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (species) DO UPDATE SET
			scientific_name = EXCLUDED.scientific_name,
			taxa_group = EXCLUDED.taxa_group,
			thermal_affinity = EXCLUDED.thermal_affinity,
			temp_min_c = EXCLUDED.temp_min_c,
			temp_max_c = EXCLUDED.temp_max_c,
			optimal_temp_c = EXCLUDED.optimal_temp_c,
			trend = EXCLUDED.trend,
			lat_shift_km_decade = EXCLUDED.lat_shift_km_decade,
			depth_shift_m_decade = EXCLUDED.depth_shift_m_decade,
			population_change_pct = EXCLUDED.population_change_pct,
			economic_importance = EXCLUDED.economic_importance,
			economic_value_millions = EXCLUDED.economic_value_millions,
			description = EXCLUDED.description
	`
	count := 0
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, "upsert_species", query,
			rec.Species, rec.ScientificName, rec.TaxaGroup, string(rec.ThermalAffinity),
			rec.TempMinC, rec.TempMaxC, rec.OptimalTempC, string(rec.Trend),
			rec.LatShiftKmPerDecade, rec.DepthShiftMPerDecade, rec.PopulationChangePct,
			rec.EconomicImportance, rec.EconomicValueM, rec.Description,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert species %q: %w", rec.Species, err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("species").Add(float64(count))
	return count, nil
}

func (r *archiveRepository) UpsertLandings(ctx context.Context, recs []models.LandingsRecord) (int, error) {
	query := `
		INSERT INTO lobster_landings (
			year, maine_millions_lbs, southern_ne_millions_lbs,
			maine_value_millions, sne_avg_bottom_temp_c
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year) DO UPDATE SET
			maine_millions_lbs = EXCLUDED.maine_millions_lbs,
			southern_ne_millions_lbs = EXCLUDED.southern_ne_millions_lbs,
			maine_value_millions = EXCLUDED.maine_value_millions,
			sne_avg_bottom_temp_c = EXCLUDED.sne_avg_bottom_temp_c
	`
	count := 0
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, "upsert_landings", query,
			rec.Year, rec.MaineMillionsLbs, rec.SNEMillionsLbs, rec.MaineValueM, rec.SNEBottomTempC,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert landings record for %d: %w", rec.Year, err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("lobster_landings").Add(float64(count))
	return count, nil
}

func (r *archiveRepository) UpsertEcosystem(ctx context.Context, recs []models.EcosystemRecord) (int, error) {
	query := `
		INSERT INTO ecosystem_indicators (
			year, calanus_abundance_index, warm_species_richness,
			cold_species_richness, marine_heatwave_days, right_whale_sightings
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (year) DO UPDATE SET
			calanus_abundance_index = EXCLUDED.calanus_abundance_index,
			warm_species_richness = EXCLUDED.warm_species_richness,
			cold_species_richness = EXCLUDED.cold_species_richness,
			marine_heatwave_days = EXCLUDED.marine_heatwave_days,
			right_whale_sightings = EXCLUDED.right_whale_sightings
	`
	count := 0
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, "upsert_ecosystem", query,
			rec.Year, rec.CalanusAbundanceIndex, rec.WarmSpeciesRichness,
			rec.ColdSpeciesRichness, rec.MarineHeatwaveDays, rec.RightWhaleSightings,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert ecosystem record for %d: %w", rec.Year, err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("ecosystem").Add(float64(count))
	return count, nil
}

func (r *archiveRepository) UpsertSpatial(ctx context.Context, recs []models.SpatialRecord) (int, error) {
	query := `
		INSERT INTO spatial_shifts (
			species, historical_lat, historical_lon, current_lat, current_lon,
			historical_south_lat, historical_north_lat, current_south_lat, current_north_lat,
			historical_hotspot, current_hotspot, shift_km, shift_direction
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (species) DO UPDATE SET
			historical_lat = EXCLUDED.historical_lat,
			historical_lon = EXCLUDED.historical_lon,
			current_lat = EXCLUDED.current_lat,
			current_lon = EXCLUDED.current_lon,
			historical_south_lat = EXCLUDED.historical_south_lat,
			historical_north_lat = EXCLUDED.historical_north_lat,
			current_south_lat = EXCLUDED.current_south_lat,
			current_north_lat = EXCLUDED.current_north_lat,
			historical_hotspot = EXCLUDED.historical_hotspot,
			current_hotspot = EXCLUDED.current_hotspot,
			shift_km = EXCLUDED.shift_km,
			shift_direction = EXCLUDED.shift_direction
	`
	count := 0
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, "upsert_spatial", query,
			rec.Species,
			rec.HistoricalCentroid.Lat, rec.HistoricalCentroid.Lon,
			rec.CurrentCentroid.Lat, rec.CurrentCentroid.Lon,
			rec.HistoricalSouthLat, rec.HistoricalNorthLat,
			rec.CurrentSouthLat, rec.CurrentNorthLat,
			rec.HistoricalHotspot.Name, rec.CurrentHotspot.Name,
			rec.ShiftKm, rec.ShiftDirection,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert spatial record %q: %w", rec.Species, err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("spatial").Add(float64(count))
	return count, nil
}

func (r *archiveRepository) UpsertFoodWeb(ctx context.Context, nodes []models.FoodWebNode, edges []models.FoodWebEdge) (int, error) {
	nodeQuery := `
		INSERT INTO food_web_nodes (id, label, trophic_level, category, thermal_affinity, trend, base_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			trophic_level = EXCLUDED.trophic_level,
			category = EXCLUDED.category,
			thermal_affinity = EXCLUDED.thermal_affinity,
			trend = EXCLUDED.trend,
			base_color = EXCLUDED.base_color
	`
	edgeQuery := `
		INSERT INTO food_web_edges (prey, predator, strength)
		VALUES ($1, $2, $3)
		ON CONFLICT (prey, predator) DO UPDATE SET strength = EXCLUDED.strength
	`
	count := 0
	for _, n := range nodes {
		_, err := r.db.ExecContext(ctx, "upsert_food_web_node", nodeQuery,
			n.ID, n.Label, n.TrophicLevel, n.Category, string(n.Affinity), string(n.Trend), n.BaseColor,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert food web node %q: %w", n.ID, err)
		}
		count++
	}
	for _, e := range edges {
		_, err := r.db.ExecContext(ctx, "upsert_food_web_edge", edgeQuery,
			e.Prey, e.Predator, string(e.Strength),
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert food web edge %s: %w", e.Key(), err)
		}
		count++
	}
	r.metrics.ArchiveRecordsTotal.WithLabelValues("food_web").Add(float64(count))
	return count, nil
}

// archiveTables is the closed set of tables CountRows accepts; the table
// name is interpolated, so it must never come from user input.
var archiveTables = map[string]bool{
	"sst_annual":           true,
	"species_responses":    true,
	"lobster_landings":     true,
	"ecosystem_indicators": true,
	"spatial_shifts":       true,
	"food_web_nodes":       true,
	"food_web_edges":       true,
}

func (r *archiveRepository) CountRows(ctx context.Context, table string) (int, error) {
	if !archiveTables[table] {
		return 0, fmt.Errorf("unknown archive table %q", table)
	}
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := r.db.GetContext(ctx, "count_rows", &count, query); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (r *archiveRepository) HealthCheck(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
