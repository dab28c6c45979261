package foodweb

import (
	"testing"

	"marine-platform/internal/models"
)

func TestStrengthWidth_StrictlyDecreasing(t *testing.T) {
	order := []models.EdgeStrength{
		models.StrengthCritical,
		models.StrengthStrong,
		models.StrengthModerate,
		models.StrengthWeak,
	}
	for i := 1; i < len(order); i++ {
		if strengthWidth(order[i-1]) <= strengthWidth(order[i]) {
			t.Errorf("width(%s) = %v should exceed width(%s) = %v",
				order[i-1], strengthWidth(order[i-1]), order[i], strengthWidth(order[i]))
		}
	}
}

func TestTrendColor_CoversClosedEnum(t *testing.T) {
	seen := make(map[string]models.PopulationTrend)
	for _, trend := range []models.PopulationTrend{
		models.TrendDeclining, models.TrendCollapsed, models.TrendPlateauing,
		models.TrendExpanding, models.TrendShiftingNorth,
	} {
		color := trendColor(trend)
		if color == fallbackColor {
			t.Errorf("trend %q fell through to the fallback color", trend)
		}
		// Each trend category must be visually distinguishable
		if other, dup := seen[color]; dup {
			t.Errorf("trends %q and %q share color %s", trend, other, color)
		}
		seen[color] = trend
	}
	if trendColor(models.PopulationTrend("Thriving")) != fallbackColor {
		t.Error("unmapped trend should get the fallback color")
	}
}

func TestAffinityColor_Substring(t *testing.T) {
	tests := []struct {
		affinity models.ThermalAffinity
		want     string
	}{
		{models.ColdWater, "#457B9D"},
		{models.CoolWater, "#D4A373"},
		{models.WarmWater, "#E63946"},
		{models.ThermalAffinity("Brackish"), fallbackColor},
	}
	for _, tt := range tests {
		if got := affinityColor(tt.affinity); got != tt.want {
			t.Errorf("affinityColor(%q) = %q, want %q", tt.affinity, got, tt.want)
		}
	}
}

func TestTrophicColor_Fallback(t *testing.T) {
	if trophicColor(2.5) == fallbackColor {
		t.Error("level 2.5 should be mapped")
	}
	for _, level := range []float64{0.5, 6.2, -1} {
		if trophicColor(level) != fallbackColor {
			t.Errorf("level %v should get the fallback color", level)
		}
	}
}

func TestNodeVisualState_HighlightTiers(t *testing.T) {
	n := newNetwork(t)

	target, err := n.NodeVisualState("herring", "herring", models.ColorByTrend)
	if err != nil {
		t.Fatal(err)
	}
	neighbor, err := n.NodeVisualState("cod", "herring", models.ColorByTrend)
	if err != nil {
		t.Fatal(err)
	}
	dimmed, err := n.NodeVisualState("phytoplankton", "herring", models.ColorByTrend)
	if err != nil {
		t.Fatal(err)
	}

	if !(target.Opacity > neighbor.Opacity && neighbor.Opacity > dimmed.Opacity) {
		t.Errorf("opacity ordering violated: target %v, neighbor %v, dimmed %v",
			target.Opacity, neighbor.Opacity, dimmed.Opacity)
	}
	if dimmed.Size >= neighbor.Size {
		t.Errorf("dimmed size %v should be reduced below in-set size %v", dimmed.Size, neighbor.Size)
	}

	// Without a target, a single default level applies uniformly.
	a, _ := n.NodeVisualState("herring", "", models.ColorByTrend)
	b, _ := n.NodeVisualState("phytoplankton", "", models.ColorByTrend)
	if a.Opacity != b.Opacity || a.Size != b.Size {
		t.Error("no-target emphasis should be uniform across nodes")
	}
}

func TestEdgeVisualState(t *testing.T) {
	n := newNetwork(t)
	inSet := models.FoodWebEdge{Prey: "calanus", Predator: "herring", Strength: models.StrengthCritical}
	outside := models.FoodWebEdge{Prey: "phytoplankton", Predator: "calanus", Strength: models.StrengthCritical}

	ev1, err := n.EdgeVisualState(inSet, "herring")
	if err != nil {
		t.Fatal(err)
	}
	ev2, err := n.EdgeVisualState(outside, "herring")
	if err != nil {
		t.Fatal(err)
	}
	if ev1.Width <= strengthWidth(inSet.Strength) {
		t.Errorf("in-set edge width %v should be amplified above base %v", ev1.Width, strengthWidth(inSet.Strength))
	}
	if ev2.Opacity >= ev1.Opacity/4 {
		t.Errorf("outside edge opacity %v should be steeply dimmed relative to %v", ev2.Opacity, ev1.Opacity)
	}

	base, _ := n.EdgeVisualState(inSet, "")
	if base.Width != strengthWidth(inSet.Strength) {
		t.Errorf("no-target width = %v, want base %v", base.Width, strengthWidth(inSet.Strength))
	}
}

func TestComputeViewState(t *testing.T) {
	n := newNetwork(t)

	view, err := n.ComputeViewState("herring", models.ColorByTrophicLevel)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Nodes) != len(n.Nodes()) {
		t.Errorf("node visual count = %d, want %d", len(view.Nodes), len(n.Nodes()))
	}
	if len(view.Edges) != len(n.Edges()) {
		t.Errorf("edge visual count = %d, want %d", len(view.Edges), len(n.Edges()))
	}
	if len(view.Positions) != len(n.Nodes()) {
		t.Errorf("position count = %d, want %d", len(view.Positions), len(n.Nodes()))
	}

	if view.Nodes["herring"].Opacity != nodeOpacityTarget {
		t.Error("target node should carry full emphasis")
	}
	if view.Nodes["phytoplankton"].Opacity != nodeOpacityDimmed {
		t.Error("non-neighbor should be dimmed")
	}

	if _, err := n.ComputeViewState("kraken", models.ColorByTrend); err == nil {
		t.Error("expected error for unknown highlight target")
	}
}
