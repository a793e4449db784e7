package timeline

import (
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Bar is the horizontal placement of an item on the visible axis, as
// fractions of the axis width
type Bar struct {
	Left  float64
	Width float64
}

// Graph is the dependency graph between dated items
type Graph struct {
	Nodes  []types.ItemID                  // dated items in input order
	Adj    map[types.ItemID][]types.ItemID // dependency -> dependents
	RevAdj map[types.ItemID][]types.ItemID // dependent -> dependencies
	Edges  []models.DependencyEdge
}

// CriticalPath is the longest chain of dependent items by total duration
type CriticalPath struct {
	Items     []types.ItemID // in dependency order
	Set       map[types.ItemID]bool
	TotalDays int
	Excluded  []types.ItemID // items skipped because they sit on or behind a cycle
}

// Contains reports whether the item is on the critical path
func (p CriticalPath) Contains(id types.ItemID) bool {
	return p.Set[id]
}

// Conflict is a dependency whose target starts before its source ends
type Conflict struct {
	Edge        models.DependencyEdge
	OverlapDays int
}
