// Package foodweb models the trophic network: species and functional
// group nodes joined by directed prey-to-predator energy flows, with
// highlight traversal and per-element visual state for the renderer.
package foodweb

import (
	"fmt"

	"marine-platform/internal/models"
)

// Position is a fixed layout coordinate. Y is tied to trophic level
// banding (lower levels render lower); X is a hand-tuned slot chosen to
// avoid overlap within a band.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Network is an immutable trophic graph. Highlight targets and color
// modes are per-request inputs, never graph state, so one Network can
// serve concurrent requests.
type Network struct {
	nodes  map[string]models.FoodWebNode
	order  []string
	edges  []models.FoodWebEdge
	byNode map[string][]int
	layout map[string]Position
}

// NewNetwork validates and indexes the graph. Every edge endpoint must
// name an existing node, self-loops are rejected, and every node must
// have a layout slot: the layout table is configuration that has to stay
// in sync with the node set, so drift fails at construction.
func NewNetwork(nodes []models.FoodWebNode, edges []models.FoodWebEdge, layout map[string]Position) (*Network, error) {
	n := &Network{
		nodes:  make(map[string]models.FoodWebNode, len(nodes)),
		order:  make([]string, 0, len(nodes)),
		edges:  edges,
		byNode: make(map[string][]int),
		layout: layout,
	}
	for _, node := range nodes {
		if _, dup := n.nodes[node.ID]; dup {
			return nil, fmt.Errorf("duplicate food web node id %q", node.ID)
		}
		if _, ok := layout[node.ID]; !ok {
			return nil, fmt.Errorf("node %q has no layout position", node.ID)
		}
		n.nodes[node.ID] = node
		n.order = append(n.order, node.ID)
	}
	for i, e := range edges {
		if e.Prey == e.Predator {
			return nil, fmt.Errorf("edge %s is a self-loop", e.Key())
		}
		if _, ok := n.nodes[e.Prey]; !ok {
			return nil, fmt.Errorf("edge %s references unknown prey node", e.Key())
		}
		if _, ok := n.nodes[e.Predator]; !ok {
			return nil, fmt.Errorf("edge %s references unknown predator node", e.Key())
		}
		n.byNode[e.Prey] = append(n.byNode[e.Prey], i)
		n.byNode[e.Predator] = append(n.byNode[e.Predator], i)
	}
	return n, nil
}

// Node returns one node by id.
func (n *Network) Node(id string) (models.FoodWebNode, error) {
	node, ok := n.nodes[id]
	if !ok {
		return models.FoodWebNode{}, &models.UnknownNodeError{NodeID: id}
	}
	return node, nil
}

// Nodes returns all nodes in construction order.
func (n *Network) Nodes() []models.FoodWebNode {
	out := make([]models.FoodWebNode, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.nodes[id])
	}
	return out
}

// Edges returns all edges.
func (n *Network) Edges() []models.FoodWebEdge {
	return n.edges
}

// NeighborsOf returns every edge touching the node as prey or predator.
// An unknown id fails fast with *models.UnknownNodeError; a valid node
// with no edges returns an empty slice, which is distinguishable.
func (n *Network) NeighborsOf(id string) ([]models.FoodWebEdge, error) {
	if _, ok := n.nodes[id]; !ok {
		return nil, &models.UnknownNodeError{NodeID: id}
	}
	indices := n.byNode[id]
	out := make([]models.FoodWebEdge, 0, len(indices))
	for _, i := range indices {
		out = append(out, n.edges[i])
	}
	return out, nil
}

// HighlightSet returns the 1-hop neighborhood of the target: the target
// itself, every directly connected node, and every touching edge, as
// membership sets keyed by node id and edge key. An empty target means
// no highlight is active and the full graph is the set.
func (n *Network) HighlightSet(target string) (map[string]bool, map[string]bool, error) {
	nodeSet := make(map[string]bool)
	edgeSet := make(map[string]bool)

	if target == "" {
		for id := range n.nodes {
			nodeSet[id] = true
		}
		for _, e := range n.edges {
			edgeSet[e.Key()] = true
		}
		return nodeSet, edgeSet, nil
	}

	touching, err := n.NeighborsOf(target)
	if err != nil {
		return nil, nil, err
	}
	nodeSet[target] = true
	for _, e := range touching {
		nodeSet[e.Prey] = true
		nodeSet[e.Predator] = true
		edgeSet[e.Key()] = true
	}
	return nodeSet, edgeSet, nil
}

// LayoutPosition returns the fixed layout coordinate for a node.
func (n *Network) LayoutPosition(id string) (Position, error) {
	if _, ok := n.nodes[id]; !ok {
		return Position{}, &models.UnknownNodeError{NodeID: id}
	}
	return n.layout[id], nil
}
