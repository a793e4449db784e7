package timeline

import (
	"slices"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// FindCriticalPath returns the chain of dependent items with the largest
// total duration (inclusive days per item). It runs one longest-path pass in
// topological order. Items on a cycle, or reachable only through one, are
// left out and listed in Excluded. Ties go to the item earliest in input order.
func FindCriticalPath(g *Graph, items []models.TimelineItem) CriticalPath {
	path := CriticalPath{Set: make(map[types.ItemID]bool)}
	if g == nil || len(g.Nodes) == 0 {
		return path
	}

	position := make(map[types.ItemID]int, len(g.Nodes))
	for i, id := range g.Nodes {
		position[id] = i
	}
	durations := make(map[types.ItemID]int, len(items))
	for _, ti := range items {
		durations[ti.Item.ID] = daterange.DaysInclusive(ti.Start, ti.End)
	}

	order := topoSort(g, position)
	if len(order) < len(g.Nodes) {
		sorted := make(map[types.ItemID]bool, len(order))
		for _, id := range order {
			sorted[id] = true
		}
		for _, id := range g.Nodes {
			if !sorted[id] {
				path.Excluded = append(path.Excluded, id)
			}
		}
	}

	best := make(map[types.ItemID]int, len(order))
	prev := make(map[types.ItemID]types.ItemID, len(order))
	for _, id := range order {
		var from types.ItemID
		longest := 0
		for _, dep := range g.RevAdj[id] {
			d := best[dep]
			if d > longest || (d == longest && from != "" && position[dep] < position[from]) {
				longest = d
				from = dep
			}
		}
		best[id] = longest + durations[id]
		if from != "" {
			prev[id] = from
		}
	}

	var last types.ItemID
	for _, id := range order {
		if last == "" || best[id] > best[last] || (best[id] == best[last] && position[id] < position[last]) {
			last = id
		}
	}
	if last == "" {
		return path
	}

	path.TotalDays = best[last]
	for id := last; id != ""; id = prev[id] {
		path.Items = append(path.Items, id)
		path.Set[id] = true
	}
	slices.Reverse(path.Items)
	return path
}

// topoSort runs Kahn's algorithm, releasing ready nodes in input order.
// Nodes on or behind a cycle never reach in-degree zero and are omitted.
func topoSort(g *Graph, position map[types.ItemID]int) []types.ItemID {
	inDegree := make(map[types.ItemID]int, len(g.Nodes))
	for _, id := range g.Nodes {
		inDegree[id] = len(g.RevAdj[id])
	}

	queue := g.Roots()
	order := make([]types.ItemID, 0, len(g.Nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var ready []types.ItemID
		for _, succ := range g.Adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		slices.SortFunc(ready, func(a, b types.ItemID) int {
			return position[a] - position[b]
		})
		queue = append(queue, ready...)
	}
	return order
}

// FindConflicts reports dependencies whose dependent starts on or before the
// day its dependency ends
func FindConflicts(g *Graph, items []models.TimelineItem) []Conflict {
	if g == nil {
		return nil
	}
	byID := make(map[types.ItemID]models.TimelineItem, len(items))
	for _, ti := range items {
		byID[ti.Item.ID] = ti
	}

	var out []Conflict
	for _, e := range g.Edges {
		src, okS := byID[e.Source]
		dst, okT := byID[e.Target]
		if !okS || !okT {
			continue
		}
		if daterange.CompareDay(dst.Start, src.End) <= 0 {
			out = append(out, Conflict{
				Edge:        e,
				OverlapDays: daterange.DaysInclusive(dst.Start, src.End),
			})
		}
	}
	return out
}
