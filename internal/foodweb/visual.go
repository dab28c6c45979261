package foodweb

import (
	"strings"

	"marine-platform/internal/models"
)

// NodeVisual is the computed render state for one node.
type NodeVisual struct {
	Opacity     float64 `json:"opacity"`
	Size        float64 `json:"size"`
	BorderWidth float64 `json:"border_width"`
	FillColor   string  `json:"fill_color"`
}

// EdgeVisual is the computed render state for one edge.
type EdgeVisual struct {
	Opacity float64 `json:"opacity"`
	Width   float64 `json:"width"`
}

// Emphasis levels. The highlight target itself gets full emphasis,
// in-set neighbors slightly less, everything else is dimmed. With no
// target active a single default level applies uniformly.
const (
	nodeOpacityTarget  = 1.0
	nodeOpacityInSet   = 0.95
	nodeOpacityDimmed  = 0.15
	nodeOpacityDefault = 0.9

	nodeSizeTarget  = 34.0
	nodeSizeInSet   = 28.0
	nodeSizeDimmed  = 14.0
	nodeSizeDefault = 26.0

	nodeBorderTarget  = 3.0
	nodeBorderInSet   = 2.0
	nodeBorderDimmed  = 0.5
	nodeBorderDefault = 1.5

	edgeOpacityInSet   = 0.95
	edgeOpacityDimmed  = 0.06
	edgeOpacityDefault = 0.6

	edgeWidthAmplify = 1.6
	edgeWidthDimmed  = 0.5
)

// fallbackColor is returned for any category or level the mapping tables
// do not cover.
const fallbackColor = "#8D99AE"

// trendColor maps every population trend to a fill color. The switch is
// exhaustive over the closed enum; anything else gets the fallback.
func trendColor(t models.PopulationTrend) string {
	switch t {
	case models.TrendCollapsed:
		return "#1D3557"
	case models.TrendDeclining:
		return "#457B9D"
	case models.TrendPlateauing:
		return "#D4A373"
	case models.TrendShiftingNorth:
		return "#F4A261"
	case models.TrendExpanding:
		return "#E63946"
	}
	return fallbackColor
}

// affinityColor maps thermal affinity by label substring, tolerating
// variant spellings from upstream datasets.
func affinityColor(a models.ThermalAffinity) string {
	label := string(a)
	switch {
	case strings.Contains(label, "Cold"):
		return "#457B9D"
	case strings.Contains(label, "Cool"):
		return "#D4A373"
	case strings.Contains(label, "Warm"):
		return "#E63946"
	}
	return fallbackColor
}

// trophicColor bands fractional trophic levels into fill colors, with an
// explicit fallback for levels outside the mapped range.
func trophicColor(level float64) string {
	switch {
	case level >= 1 && level < 2:
		return "#2A9D8F"
	case level >= 2 && level < 3:
		return "#457B9D"
	case level >= 3 && level < 4:
		return "#D4A373"
	case level >= 4 && level <= 5:
		return "#E63946"
	}
	return fallbackColor
}

// fillColor selects the node fill by color mode.
func fillColor(node models.FoodWebNode, mode models.ColorMode) string {
	switch mode {
	case models.ColorByTrend:
		return trendColor(node.Trend)
	case models.ColorByAffinity:
		return affinityColor(node.Affinity)
	case models.ColorByTrophicLevel:
		return trophicColor(node.TrophicLevel)
	}
	return node.BaseColor
}

// strengthWidth maps edge strength to base line width, strictly
// decreasing from critical to weak.
func strengthWidth(s models.EdgeStrength) float64 {
	switch s {
	case models.StrengthCritical:
		return 5.0
	case models.StrengthStrong:
		return 3.5
	case models.StrengthModerate:
		return 2.0
	case models.StrengthWeak:
		return 1.0
	}
	return 1.0
}

// NodeVisualState computes the render state for one node given the
// current highlight target and color mode.
func (n *Network) NodeVisualState(id, target string, mode models.ColorMode) (NodeVisual, error) {
	node, err := n.Node(id)
	if err != nil {
		return NodeVisual{}, err
	}
	fill := fillColor(node, mode)

	if target == "" {
		return NodeVisual{
			Opacity:     nodeOpacityDefault,
			Size:        nodeSizeDefault,
			BorderWidth: nodeBorderDefault,
			FillColor:   fill,
		}, nil
	}

	nodeSet, _, err := n.HighlightSet(target)
	if err != nil {
		return NodeVisual{}, err
	}
	switch {
	case id == target:
		return NodeVisual{Opacity: nodeOpacityTarget, Size: nodeSizeTarget, BorderWidth: nodeBorderTarget, FillColor: fill}, nil
	case nodeSet[id]:
		return NodeVisual{Opacity: nodeOpacityInSet, Size: nodeSizeInSet, BorderWidth: nodeBorderInSet, FillColor: fill}, nil
	}
	return NodeVisual{Opacity: nodeOpacityDimmed, Size: nodeSizeDimmed, BorderWidth: nodeBorderDimmed, FillColor: fill}, nil
}

// EdgeVisualState computes the render state for one edge given the
// current highlight target.
func (n *Network) EdgeVisualState(edge models.FoodWebEdge, target string) (EdgeVisual, error) {
	base := strengthWidth(edge.Strength)

	if target == "" {
		return EdgeVisual{Opacity: edgeOpacityDefault, Width: base}, nil
	}

	_, edgeSet, err := n.HighlightSet(target)
	if err != nil {
		return EdgeVisual{}, err
	}
	if edgeSet[edge.Key()] {
		return EdgeVisual{Opacity: edgeOpacityInSet, Width: base * edgeWidthAmplify}, nil
	}
	return EdgeVisual{Opacity: edgeOpacityDimmed, Width: base * edgeWidthDimmed}, nil
}

// ViewState is the full computed render state for the network.
type ViewState struct {
	Nodes     map[string]NodeVisual `json:"nodes"`
	Edges     map[string]EdgeVisual `json:"edges"`
	Positions map[string]Position   `json:"positions"`
}

// ComputeViewState evaluates every node and edge against the highlight
// target and color mode in one pass, for the rendering collaborator.
func (n *Network) ComputeViewState(target string, mode models.ColorMode) (*ViewState, error) {
	nodeSet, edgeSet, err := n.HighlightSet(target)
	if err != nil {
		return nil, err
	}

	view := &ViewState{
		Nodes:     make(map[string]NodeVisual, len(n.order)),
		Edges:     make(map[string]EdgeVisual, len(n.edges)),
		Positions: make(map[string]Position, len(n.order)),
	}
	for _, id := range n.order {
		node := n.nodes[id]
		fill := fillColor(node, mode)
		var nv NodeVisual
		switch {
		case target == "":
			nv = NodeVisual{Opacity: nodeOpacityDefault, Size: nodeSizeDefault, BorderWidth: nodeBorderDefault, FillColor: fill}
		case id == target:
			nv = NodeVisual{Opacity: nodeOpacityTarget, Size: nodeSizeTarget, BorderWidth: nodeBorderTarget, FillColor: fill}
		case nodeSet[id]:
			nv = NodeVisual{Opacity: nodeOpacityInSet, Size: nodeSizeInSet, BorderWidth: nodeBorderInSet, FillColor: fill}
		default:
			nv = NodeVisual{Opacity: nodeOpacityDimmed, Size: nodeSizeDimmed, BorderWidth: nodeBorderDimmed, FillColor: fill}
		}
		view.Nodes[id] = nv
		view.Positions[id] = n.layout[id]
	}
	for _, e := range n.edges {
		base := strengthWidth(e.Strength)
		var ev EdgeVisual
		switch {
		case target == "":
			ev = EdgeVisual{Opacity: edgeOpacityDefault, Width: base}
		case edgeSet[e.Key()]:
			ev = EdgeVisual{Opacity: edgeOpacityInSet, Width: base * edgeWidthAmplify}
		default:
			ev = EdgeVisual{Opacity: edgeOpacityDimmed, Width: base * edgeWidthDimmed}
		}
		view.Edges[e.Key()] = ev
	}
	return view, nil
}
