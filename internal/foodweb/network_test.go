package foodweb

import (
	"errors"
	"testing"

	"marine-platform/internal/models"
	"marine-platform/internal/registry"
)

func newNetwork(t *testing.T) *Network {
	t.Helper()
	r := registry.New()
	n, err := NewNetwork(r.FoodWebNodes(), r.FoodWebEdges(), DefaultLayout())
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return n
}

func TestNeighborsOf_Herring(t *testing.T) {
	n := newNetwork(t)

	edges, err := n.NeighborsOf("herring")
	if err != nil {
		t.Fatalf("NeighborsOf: %v", err)
	}

	prey := make(map[string]bool)
	predators := make(map[string]bool)
	for _, e := range edges {
		if e.Predator == "herring" {
			prey[e.Prey] = true
		}
		if e.Prey == "herring" {
			predators[e.Predator] = true
		}
	}

	wantPrey := []string{"calanus", "centropages", "krill"}
	wantPredators := []string{"cod", "tuna", "humpback", "puffin", "seals"}

	if len(prey) != len(wantPrey) {
		t.Errorf("herring prey count = %d, want %d", len(prey), len(wantPrey))
	}
	for _, id := range wantPrey {
		if !prey[id] {
			t.Errorf("missing herring prey %q", id)
		}
	}
	if len(predators) != len(wantPredators) {
		t.Errorf("herring predator count = %d, want %d", len(predators), len(wantPredators))
	}
	for _, id := range wantPredators {
		if !predators[id] {
			t.Errorf("missing herring predator %q", id)
		}
	}
}

func TestNeighborsOf_UnknownNode(t *testing.T) {
	n := newNetwork(t)

	_, err := n.NeighborsOf("kraken")
	if err == nil {
		t.Fatal("expected error for unknown node, not an empty set")
	}
	var unknownErr *models.UnknownNodeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %T, want *models.UnknownNodeError", err)
	}
	if unknownErr.NodeID != "kraken" {
		t.Errorf("NodeID = %q, want %q", unknownErr.NodeID, "kraken")
	}
}

func TestHighlightSet_OneHopOnly(t *testing.T) {
	n := newNetwork(t)

	nodeSet, edgeSet, err := n.HighlightSet("herring")
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]bool{
		"herring": true, "calanus": true, "centropages": true, "krill": true,
		"cod": true, "tuna": true, "humpback": true, "puffin": true, "seals": true,
	}
	if len(nodeSet) != len(want) {
		t.Errorf("highlight node count = %d, want %d", len(nodeSet), len(want))
	}
	for id := range want {
		if !nodeSet[id] {
			t.Errorf("highlight set missing %q", id)
		}
	}

	// Two hops away via calanus but not adjacent to herring.
	for _, id := range []string{"phytoplankton", "rightwhale", "sandlance", "mackerel"} {
		if nodeSet[id] {
			t.Errorf("two-hop node %q must not be highlighted", id)
		}
	}

	for key := range edgeSet {
		found := false
		for _, e := range n.Edges() {
			if e.Key() == key && (e.Prey == "herring" || e.Predator == "herring") {
				found = true
			}
		}
		if !found {
			t.Errorf("edge %q in highlight set does not touch herring", key)
		}
	}
}

func TestHighlightSet_NoTargetIsFullGraph(t *testing.T) {
	n := newNetwork(t)

	nodeSet, edgeSet, err := n.HighlightSet("")
	if err != nil {
		t.Fatal(err)
	}
	if len(nodeSet) != len(n.Nodes()) {
		t.Errorf("node set size = %d, want %d", len(nodeSet), len(n.Nodes()))
	}
	if len(edgeSet) != len(n.Edges()) {
		t.Errorf("edge set size = %d, want %d", len(edgeSet), len(n.Edges()))
	}
}

func TestNewNetwork_Validation(t *testing.T) {
	nodes := []models.FoodWebNode{
		{ID: "a", TrophicLevel: 1},
		{ID: "b", TrophicLevel: 2},
	}
	layout := map[string]Position{"a": {0, 100}, "b": {0, 200}}

	tests := []struct {
		name   string
		nodes  []models.FoodWebNode
		edges  []models.FoodWebEdge
		layout map[string]Position
	}{
		{"self-loop", nodes, []models.FoodWebEdge{{Prey: "a", Predator: "a", Strength: models.StrengthWeak}}, layout},
		{"unknown endpoint", nodes, []models.FoodWebEdge{{Prey: "a", Predator: "c", Strength: models.StrengthWeak}}, layout},
		{"missing layout slot", nodes, nil, map[string]Position{"a": {0, 100}}},
		{"duplicate id", append([]models.FoodWebNode{{ID: "a", TrophicLevel: 1}}, nodes...), nil, layout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewNetwork(tt.nodes, tt.edges, tt.layout); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestLayoutPosition_MonotoneInTrophicLevel(t *testing.T) {
	n := newNetwork(t)

	for _, a := range n.Nodes() {
		posA, err := n.LayoutPosition(a.ID)
		if err != nil {
			t.Fatal(err)
		}
		for _, b := range n.Nodes() {
			if a.TrophicLevel < b.TrophicLevel {
				posB, _ := n.LayoutPosition(b.ID)
				if posA.Y >= posB.Y {
					t.Errorf("%s (level %.1f, y=%.0f) should render below %s (level %.1f, y=%.0f)",
						a.ID, a.TrophicLevel, posA.Y, b.ID, b.TrophicLevel, posB.Y)
				}
			}
		}
	}

	if _, err := n.LayoutPosition("kraken"); err == nil {
		t.Error("expected error for unknown node position")
	}
}
