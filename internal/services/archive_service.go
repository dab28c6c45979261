package services

import (
	"context"
	"fmt"
	"time"

	"marine-platform/internal/registry"
	"marine-platform/internal/repository"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

// ArchiveService publishes the bundled datasets into the relational
// archive. The archive is a provenance mirror for downstream analysts;
// the registry stays authoritative for the computation core.
type ArchiveService struct {
	registry *registry.Registry
	repo     repository.ArchiveRepository
	logger   *logging.StructuredLogger
	metrics  *metrics.Collector
}

// NewArchiveService creates a new archive service
func NewArchiveService(reg *registry.Registry, repo repository.ArchiveRepository, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *ArchiveService {
	return &ArchiveService{
		registry: reg,
		repo:     repo,
		logger:   logger,
		metrics:  metricsCollector,
	}
}

// PublishAll writes every dataset through the repository and returns
// per-dataset record counts. Publication is idempotent; rerunning
// refreshes the archive in place.
func (s *ArchiveService) PublishAll(ctx context.Context) (map[string]int, error) {
	startTime := time.Now()
	timer := s.metrics.NewTimer(s.metrics.ArchiveDuration)
	defer timer.ObserveDuration()

	s.logger.Info(ctx, "[ARCHIVE_START] Starting archive publication", logging.Fields{
		"datasets": s.registry.Names(),
	})

	counts := make(map[string]int)

	n, err := s.repo.UpsertTemperature(ctx, s.registry.Temperature())
	if err != nil {
		s.metrics.RecordArchiveError("sst")
		return counts, fmt.Errorf("failed to publish SST dataset: %w", err)
	}
	counts[registry.DatasetSST] = n

	n, err = s.repo.UpsertSpecies(ctx, s.registry.Species())
	if err != nil {
		s.metrics.RecordArchiveError("species")
		return counts, fmt.Errorf("failed to publish species dataset: %w", err)
	}
	counts[registry.DatasetSpecies] = n

	n, err = s.repo.UpsertLandings(ctx, s.registry.Landings())
	if err != nil {
		s.metrics.RecordArchiveError("lobster_landings")
		return counts, fmt.Errorf("failed to publish landings dataset: %w", err)
	}
	counts[registry.DatasetLandings] = n

	n, err = s.repo.UpsertEcosystem(ctx, s.registry.Ecosystem())
	if err != nil {
		s.metrics.RecordArchiveError("ecosystem")
		return counts, fmt.Errorf("failed to publish ecosystem dataset: %w", err)
	}
	counts[registry.DatasetEcosystem] = n

	n, err = s.repo.UpsertSpatial(ctx, s.registry.Spatial())
	if err != nil {
		s.metrics.RecordArchiveError("spatial")
		return counts, fmt.Errorf("failed to publish spatial dataset: %w", err)
	}
	counts[registry.DatasetSpatial] = n

	nodes := s.registry.FoodWebNodes()
	edges := s.registry.FoodWebEdges()
	n, err = s.repo.UpsertFoodWeb(ctx, nodes, edges)
	if err != nil {
		s.metrics.RecordArchiveError("food_web")
		return counts, fmt.Errorf("failed to publish food web dataset: %w", err)
	}
	counts[registry.DatasetFoodWebNodes] = len(nodes)
	counts[registry.DatasetFoodWebEdges] = n - len(nodes)

	s.logger.Info(ctx, "[ARCHIVE_COMPLETE] Archive publication completed", logging.Fields{
		"counts":           counts,
		"duration_seconds": time.Since(startTime).Seconds(),
	})
	return counts, nil
}
