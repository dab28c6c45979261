package handlers

import (
	"encoding/json"
	"net/http"
)

// OpenAPISpec returns the OpenAPI 3.0 specification for the Marine Platform API
func OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	controlParams := []map[string]interface{}{
		{
			"name":        "unit",
			"in":          "query",
			"description": "Temperature unit (C or F, default C)",
			"required":    false,
			"schema":      map[string]interface{}{"type": "string", "enum": []string{"C", "F"}},
		},
		{
			"name":        "start_year",
			"in":          "query",
			"description": "Inclusive lower bound of the year window (default 1982)",
			"required":    false,
			"schema":      map[string]interface{}{"type": "integer", "default": 1982},
		},
		{
			"name":        "end_year",
			"in":          "query",
			"description": "Inclusive upper bound of the year window (default 2024)",
			"required":    false,
			"schema":      map[string]interface{}{"type": "integer", "default": 2024},
		},
	}
	affinityParam := map[string]interface{}{
		"name":        "affinity",
		"in":          "query",
		"description": "Thermal affinity filter, repeatable (default all)",
		"required":    false,
		"schema": map[string]interface{}{
			"type": "string",
			"enum": []string{"Cold-water", "Cool-water", "Warm-water"},
		},
	}

	spec := map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Marine Platform API",
			"description": "Derived climate views over curated Gulf of Maine datasets: temperature trends, species responses, range shifts, and the trophic network",
			"version":     "1.0.0",
			"contact": map[string]string{
				"name": "Marine Platform Team",
			},
		},
		"servers": []map[string]string{
			{"url": "http://localhost:8080", "description": "Local development server"},
		},
		"paths": map[string]interface{}{
			"/api/views/temperature": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Temperature view",
					"description": "Annual SST series with rolling mean, warming trend, decadal aggregates, and regime shift summary",
					"parameters":  controlParams,
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed temperature view"},
						"400": map[string]interface{}{"description": "Invalid control state"},
					},
				},
			},
			"/api/views/species": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Species view",
					"description": "Affinity-filtered species climate responses sorted by latitudinal shift rate",
					"parameters": append([]map[string]interface{}{affinityParam}, map[string]interface{}{
						"name":        "species",
						"in":          "query",
						"description": "Species to include as the selected detail",
						"required":    false,
						"schema":      map[string]string{"type": "string"},
					}),
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed species view"},
						"400": map[string]interface{}{"description": "Invalid control state"},
					},
				},
			},
			"/api/views/landings": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Lobster landings view",
					"description": "Regional lobster landings with peak analysis and bottom temperature overlay",
					"parameters":  controlParams,
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed landings view"},
						"400": map[string]interface{}{"description": "Invalid control state"},
					},
				},
			},
			"/api/views/ecosystem": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Ecosystem indicators view",
					"description": "Year-filtered ecosystem indicator series with per-indicator change over the window",
					"parameters":  controlParams,
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed ecosystem view"},
						"400": map[string]interface{}{"description": "Invalid control state"},
					},
				},
			},
			"/api/views/spatial": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Range shift view",
					"description": "Per-species historical vs current geography with range width change and consistency flags",
					"parameters": []map[string]interface{}{
						affinityParam,
						{
							"name":        "map_mode",
							"in":          "query",
							"description": "Map geometry to render",
							"required":    false,
							"schema": map[string]interface{}{
								"type": "string",
								"enum": []string{"centroids", "ranges", "hotspots"},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed spatial view"},
						"400": map[string]interface{}{"description": "Invalid control state"},
					},
				},
			},
			"/api/views/foodweb": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Food web view",
					"description": "Trophic network with computed per-node and per-edge visual state for the active highlight",
					"parameters": []map[string]interface{}{
						{
							"name":        "highlight",
							"in":          "query",
							"description": "Node id to highlight with its 1-hop neighborhood",
							"required":    false,
							"schema":      map[string]string{"type": "string"},
						},
						{
							"name":        "color_mode",
							"in":          "query",
							"description": "Node fill color mapping",
							"required":    false,
							"schema": map[string]interface{}{
								"type": "string",
								"enum": []string{"population_trend", "thermal_affinity", "trophic_level"},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Computed food web view"},
						"404": map[string]interface{}{"description": "Unknown highlight target"},
					},
				},
			},
			"/api/datasets": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List datasets",
					"description": "Recognized dataset names in canonical order",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Dataset name list"},
					},
				},
			},
			"/api/datasets/{name}/export": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Export dataset as CSV",
					"description": "Flatten one curated dataset to CSV",
					"parameters": []map[string]interface{}{
						{
							"name":     "name",
							"in":       "path",
							"required": true,
							"schema":   map[string]string{"type": "string"},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "CSV export",
							"content": map[string]interface{}{
								"text/csv": map[string]interface{}{
									"schema": map[string]string{"type": "string"},
								},
							},
						},
						"404": map[string]interface{}{"description": "Unknown dataset"},
					},
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Health check",
					"description": "Check if the API is running",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "API is healthy",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"status": map[string]string{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
			"/metrics": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Prometheus metrics",
					"description": "Prometheus metrics endpoint for monitoring",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Prometheus metrics in text format",
							"content": map[string]interface{}{
								"text/plain": map[string]interface{}{
									"schema": map[string]string{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}
