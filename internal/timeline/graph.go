package timeline

import (
	"log/slog"

	"github.com/thenoetrevino/boardview/internal/cells"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// BuildGraph reads dependency edges from depColumn. Each id in an item's
// cell names an item it depends on, giving an edge dependency -> dependent.
// Malformed cells, self references and ids of undated or unknown items are
// dropped; duplicate edges are kept once.
func BuildGraph(items []models.TimelineItem, depColumn types.ColumnID) *Graph {
	g := &Graph{
		Adj:    make(map[types.ItemID][]types.ItemID),
		RevAdj: make(map[types.ItemID][]types.ItemID),
	}

	known := make(map[types.ItemID]bool, len(items))
	for _, ti := range items {
		g.Nodes = append(g.Nodes, ti.Item.ID)
		known[ti.Item.ID] = true
	}

	edgeSet := make(map[models.DependencyEdge]bool)
	for _, ti := range items {
		raw, ok := ti.Item.Cell(depColumn)
		if !ok {
			continue
		}
		deps, err := cells.ParseIDList(raw)
		if err != nil {
			slog.Debug("ignoring malformed dependency cell", "item_id", ti.Item.ID, "error", err)
			continue
		}
		for _, dep := range deps {
			source := types.ItemID(dep)
			if source == ti.Item.ID || !known[source] {
				continue
			}
			edge := models.DependencyEdge{Source: source, Target: ti.Item.ID}
			if edgeSet[edge] {
				continue
			}
			edgeSet[edge] = true
			g.Edges = append(g.Edges, edge)
			g.Adj[source] = append(g.Adj[source], ti.Item.ID)
			g.RevAdj[ti.Item.ID] = append(g.RevAdj[ti.Item.ID], source)
		}
	}
	return g
}

// Roots returns the nodes without dependencies, in input order
func (g *Graph) Roots() []types.ItemID {
	var roots []types.ItemID
	for _, id := range g.Nodes {
		if len(g.RevAdj[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// Dependents returns the items that depend on id
func (g *Graph) Dependents(id types.ItemID) []types.ItemID {
	return g.Adj[id]
}

// Dependencies returns the items id depends on
func (g *Graph) Dependencies(id types.ItemID) []types.ItemID {
	return g.RevAdj[id]
}
