/*
Package pathfinder finds routes between two cells of any maze-like graph.

A graph only has to enumerate the neighbours of a cell and say whether two
neighbouring cells are separated by a wall. With a heuristic the search is a
best-first (A*-style, unit edge cost) search that returns a shortest path;
without one it falls back to a plain depth-first flood fill.
*/
package pathfinder

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrNoPath is returned when the frontier is exhausted before reaching the goal.
	ErrNoPath = errors.New("no path found from start to end")
)

// Graph is the capability set a maze must provide to be searched.
type Graph[C comparable] interface {
	// Adjacent returns the in-bounds neighbours of c in a deterministic order.
	Adjacent(c C) []C

	// Separated reports whether a wall lies between the adjacent cells a and b.
	Separated(a, b C) (bool, error)
}

// Heuristic estimates the remaining distance between two cells.
// It must never overestimate for BestFirst to return a shortest path.
type Heuristic[C comparable] func(from, to C) int

// Solve searches with BestFirst when h is set and with FloodFill otherwise.
func Solve[C comparable](g Graph[C], start, end C, h Heuristic[C]) ([]C, error) {
	if h == nil {
		return FloodFill(g, start, end)
	}
	return BestFirst(g, start, end, h)
}

// BestFirst expands the frontier cell with the lowest h(cell, end) + len(path to cell).
// A cell is closed when it is expanded; until then a strictly shorter path to it
// replaces the recorded one. Among equally ranked cells the most recently
// discovered one is expanded first.
func BestFirst[C comparable](g Graph[C], start, end C, h Heuristic[C]) ([]C, error) {
	pathTo := map[C][]C{start: {start}}
	closed := make(map[C]struct{})
	frontier := &priorityQueue[C]{}
	heap.Push(frontier, &item[C]{cell: start, cost: h(start, end) + 1})

	var seq int
	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(*item[C]).cell
		if _, done := closed[current]; done {
			// superseded by a shorter path
			continue
		}
		if current == end {
			return pathTo[end], nil
		}
		closed[current] = struct{}{}

		for _, adj := range g.Adjacent(current) {
			if _, done := closed[adj]; done {
				continue
			}
			separated, err := g.Separated(current, adj)
			if err != nil {
				return nil, fmt.Errorf("checking wall between %v and %v: %w", current, adj, err)
			}
			if separated {
				continue
			}
			if known, ok := pathTo[adj]; ok && len(known) <= len(pathTo[current])+1 {
				continue
			}

			path := extend(pathTo[current], adj)
			pathTo[adj] = path
			seq++
			heap.Push(frontier, &item[C]{cell: adj, cost: h(adj, end) + len(path), seq: seq})
		}
	}
	return nil, ErrNoPath
}

// FloodFill explores depth-first without a heuristic. The returned path is
// valid but not necessarily the shortest one.
func FloodFill[C comparable](g Graph[C], start, end C) ([]C, error) {
	pathTo := map[C][]C{start: {start}}
	stack := []C{start}

	for {
		if path, ok := pathTo[end]; ok {
			return path, nil
		}
		if len(stack) == 0 {
			return nil, ErrNoPath
		}

		current := pop(&stack)
		for _, adj := range g.Adjacent(current) {
			if _, seen := pathTo[adj]; seen {
				continue
			}
			separated, err := g.Separated(current, adj)
			if err != nil {
				return nil, fmt.Errorf("checking wall between %v and %v: %w", current, adj, err)
			}
			if separated {
				continue
			}
			pathTo[adj] = extend(pathTo[current], adj)
			stack = append(stack, adj)
		}
	}
}

// extend copies path so sibling branches never share a backing array.
func extend[C comparable](path []C, next C) []C {
	extended := make([]C, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, next)
}

// pop removes and returns the last element of a stack.
func pop[C comparable](s *[]C) C {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
