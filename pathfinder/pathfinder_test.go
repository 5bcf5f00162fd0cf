package pathfinder

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

// openGrid is a w×h grid where cut holds blocked edges keyed both ways.
type openGrid struct {
	w, h int
	cut  map[[2]point]bool
}

func newOpenGrid(w, h int) *openGrid {
	return &openGrid{w: w, h: h, cut: map[[2]point]bool{}}
}

func (g *openGrid) block(a, b point) {
	g.cut[[2]point{a, b}] = true
	g.cut[[2]point{b, a}] = true
}

func (g *openGrid) Adjacent(c point) []point {
	var out []point
	for _, d := range []point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := point{c.x + d.x, c.y + d.y}
		if n.x >= 0 && n.x < g.w && n.y >= 0 && n.y < g.h {
			out = append(out, n)
		}
	}
	return out
}

func (g *openGrid) Separated(a, b point) (bool, error) {
	return g.cut[[2]point{a, b}], nil
}

func manhattan(a, b point) int {
	return abs(a.x-b.x) + abs(a.y-b.y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func assertConnected(t *testing.T, g *openGrid, path []point) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, manhattan(path[i-1], path[i]), "step %d is not a unit move", i)
		sep, _ := g.Separated(path[i-1], path[i])
		assert.False(t, sep, "step %d crosses a wall", i)
	}
}

func TestBestFirst(t *testing.T) {
	t.Run("open grid returns a shortest path", func(t *testing.T) {
		g := newOpenGrid(4, 4)
		path, err := BestFirst[point](g, point{0, 0}, point{3, 3}, manhattan)
		require.NoError(t, err)
		assert.Equal(t, point{0, 0}, path[0])
		assert.Equal(t, point{3, 3}, path[len(path)-1])
		assert.Len(t, path, 7)
		assertConnected(t, g, path)
	})

	t.Run("ties prefer the latest discovery", func(t *testing.T) {
		g := newOpenGrid(3, 3)
		path, err := BestFirst[point](g, point{0, 0}, point{2, 2}, manhattan)
		require.NoError(t, err)
		assert.Equal(t, []point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, path)
	})

	t.Run("detour around a wall is still shortest", func(t *testing.T) {
		g := newOpenGrid(3, 2)
		g.block(point{0, 0}, point{1, 0})
		g.block(point{1, 0}, point{1, 1})
		path, err := BestFirst[point](g, point{0, 0}, point{1, 0}, manhattan)
		require.NoError(t, err)
		assert.Equal(t, []point{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}, {1, 0}}, path)
	})

	t.Run("start equals end", func(t *testing.T) {
		g := newOpenGrid(2, 2)
		path, err := BestFirst[point](g, point{1, 1}, point{1, 1}, manhattan)
		require.NoError(t, err)
		assert.Equal(t, []point{{1, 1}}, path)
	})

	t.Run("sealed goal reports ErrNoPath", func(t *testing.T) {
		g := newOpenGrid(2, 2)
		g.block(point{1, 1}, point{0, 1})
		g.block(point{1, 1}, point{1, 0})
		_, err := BestFirst[point](g, point{0, 0}, point{1, 1}, manhattan)
		assert.ErrorIs(t, err, ErrNoPath)
	})
}

func TestBestFirstMatchesBreadthFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 1000; trial++ {
		g := newOpenGrid(2+rng.Intn(7), 2+rng.Intn(7))
		randomPoint := func() point { return point{rng.Intn(g.w), rng.Intn(g.h)} }
		for n := rng.Intn(g.w * g.h); n > 0; n-- {
			a := randomPoint()
			adj := g.Adjacent(a)
			g.block(a, adj[rng.Intn(len(adj))])
		}

		start, end := randomPoint(), randomPoint()
		want := breadthFirst(g, start, end)

		path, err := BestFirst[point](g, start, end, manhattan)
		if want < 0 {
			assert.ErrorIs(t, err, ErrNoPath, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
		assertConnected(t, g, path)
		require.Equal(t, want, len(path)-1, "trial %d: %v -> %v", trial, start, end)
	}
}

func TestBestFirstReplacesLongerDiscoveries(t *testing.T) {
	// (2, 1) is first reached over the top row, two steps longer than along the bottom row.
	g := newOpenGrid(5, 2)
	g.block(point{2, 0}, point{3, 0})

	path, err := BestFirst[point](g, point{0, 1}, point{4, 0}, manhattan)
	require.NoError(t, err)
	assert.Equal(t, []point{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {3, 0}, {4, 0}}, path)
}

// breadthFirst returns the number of unblocked steps from a to b, -1 if b is unreachable.
func breadthFirst(g *openGrid, a, b point) int {
	dist := map[point]int{a: 0}
	queue := []point{a}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == b {
			return dist[current]
		}
		for _, next := range g.Adjacent(current) {
			if _, seen := dist[next]; seen || g.cut[[2]point{current, next}] {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestFloodFill(t *testing.T) {
	t.Run("finds a valid path", func(t *testing.T) {
		g := newOpenGrid(5, 5)
		g.block(point{2, 2}, point{3, 2})
		path, err := FloodFill[point](g, point{0, 0}, point{4, 4})
		require.NoError(t, err)
		assert.Equal(t, point{0, 0}, path[0])
		assert.Equal(t, point{4, 4}, path[len(path)-1])
		assertConnected(t, g, path)
	})

	t.Run("sealed goal reports ErrNoPath", func(t *testing.T) {
		g := newOpenGrid(1, 3)
		g.block(point{0, 1}, point{0, 2})
		_, err := FloodFill[point](g, point{0, 0}, point{0, 2})
		assert.ErrorIs(t, err, ErrNoPath)
	})
}

func TestSolve(t *testing.T) {
	g := newOpenGrid(6, 6)

	withHeuristic, err := Solve[point](g, point{0, 0}, point{5, 5}, manhattan)
	require.NoError(t, err)
	assert.Len(t, withHeuristic, 11)

	withoutHeuristic, err := Solve[point](g, point{0, 0}, point{5, 5}, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(withoutHeuristic), 11)
	assertConnected(t, g, withoutHeuristic)
}

type brokenGraph struct{ *openGrid }

var errBroken = errors.New("broken predicate")

func (brokenGraph) Separated(a, b point) (bool, error) { return false, errBroken }

func TestPredicateErrorsPropagate(t *testing.T) {
	g := brokenGraph{newOpenGrid(2, 2)}

	_, err := BestFirst[point](g, point{0, 0}, point{1, 1}, manhattan)
	assert.ErrorIs(t, err, errBroken)

	_, err = FloodFill[point](g, point{0, 0}, point{1, 1})
	assert.ErrorIs(t, err, errBroken)
}
