package registry

import (
	"sync"

	"marine-platform/internal/models"
)

// Dataset names recognized by the registry.
const (
	DatasetSST          = "sst"
	DatasetSpecies      = "species"
	DatasetLandings     = "lobster_landings"
	DatasetEcosystem    = "ecosystem"
	DatasetSpatial      = "spatial"
	DatasetFoodWebNodes = "food_web_nodes"
	DatasetFoodWebEdges = "food_web_edges"
)

// Registry owns the immutable curated datasets and hands out references to
// them by name. Loading happens once; every accessor afterwards returns the
// same canonical slice, so callers must treat the records as read-only.
type Registry struct {
	once sync.Once

	sst       []models.TemperatureRecord
	species   []models.SpeciesRecord
	landings  []models.LandingsRecord
	ecosystem []models.EcosystemRecord
	spatial   []models.SpatialRecord
	webNodes  []models.FoodWebNode
	webEdges  []models.FoodWebEdge
}

// New creates a registry. Data are materialized lazily on first access;
// the sync.Once makes concurrent first access converge on one canonical
// result.
func New() *Registry {
	return &Registry{}
}

func (r *Registry) load() {
	r.once.Do(func() {
		r.sst = buildTemperatureData()
		r.species = buildSpeciesData()
		r.landings = buildLandingsData()
		r.ecosystem = buildEcosystemData()
		r.spatial = buildSpatialData()
		r.webNodes = buildFoodWebNodes()
		r.webEdges = buildFoodWebEdges()
	})
}

// Names lists the recognized dataset names in canonical order.
func (r *Registry) Names() []string {
	return []string{
		DatasetSST,
		DatasetSpecies,
		DatasetLandings,
		DatasetEcosystem,
		DatasetSpatial,
		DatasetFoodWebNodes,
		DatasetFoodWebEdges,
	}
}

// Get returns the named dataset as its concrete record slice. Unknown
// names fail with *models.UnknownDatasetError.
func (r *Registry) Get(name string) (interface{}, error) {
	r.load()
	switch name {
	case DatasetSST:
		return r.sst, nil
	case DatasetSpecies:
		return r.species, nil
	case DatasetLandings:
		return r.landings, nil
	case DatasetEcosystem:
		return r.ecosystem, nil
	case DatasetSpatial:
		return r.spatial, nil
	case DatasetFoodWebNodes:
		return r.webNodes, nil
	case DatasetFoodWebEdges:
		return r.webEdges, nil
	}
	return nil, &models.UnknownDatasetError{Name: name}
}

// Temperature returns the annual SST series, 1982-2024.
func (r *Registry) Temperature() []models.TemperatureRecord {
	r.load()
	return r.sst
}

// Species returns the species climate-response records.
func (r *Registry) Species() []models.SpeciesRecord {
	r.load()
	return r.species
}

// SpeciesByName returns the record for one species, or nil if absent.
func (r *Registry) SpeciesByName(name string) *models.SpeciesRecord {
	r.load()
	for i := range r.species {
		if r.species[i].Species == name {
			return &r.species[i]
		}
	}
	return nil
}

// Landings returns the regional lobster landings series.
func (r *Registry) Landings() []models.LandingsRecord {
	r.load()
	return r.landings
}

// Ecosystem returns the ecosystem indicator series, 2000-2024.
func (r *Registry) Ecosystem() []models.EcosystemRecord {
	r.load()
	return r.ecosystem
}

// Spatial returns the per-species range shift summaries.
func (r *Registry) Spatial() []models.SpatialRecord {
	r.load()
	return r.spatial
}

// FoodWebNodes returns the trophic network node set.
func (r *Registry) FoodWebNodes() []models.FoodWebNode {
	r.load()
	return r.webNodes
}

// FoodWebEdges returns the directed prey-to-predator edge set.
func (r *Registry) FoodWebEdges() []models.FoodWebEdge {
	r.load()
	return r.webEdges
}
