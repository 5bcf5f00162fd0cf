package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, Grid{Width: 3, Height: 4}, g)

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestNewPosition(t *testing.T) {
	g := Grid{Width: 5, Height: 5}

	t.Run("inside the grid", func(t *testing.T) {
		_, err := g.NewPosition(0, 0)
		assert.NoError(t, err)
		p, err := g.NewPosition(4, 4)
		assert.NoError(t, err)
		assert.Equal(t, Position{X: 4, Y: 4}, p)
	})

	t.Run("outside the grid", func(t *testing.T) {
		for _, c := range [][2]int{{5, 0}, {0, 5}, {-1, 0}, {0, -1}} {
			_, err := g.NewPosition(c[0], c[1])
			assert.ErrorIs(t, err, ErrOutOfBounds, "(%d, %d)", c[0], c[1])
		}
	})
}

func TestAdjacentPositions(t *testing.T) {
	g := Grid{Width: 3, Height: 3}

	t.Run("centre has four neighbours in canonical order", func(t *testing.T) {
		adjacent := g.AdjacentPositions(Position{X: 1, Y: 1})
		assert.Equal(t, []Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, adjacent)
	})

	t.Run("corner has two", func(t *testing.T) {
		assert.Equal(t, []Position{{1, 0}, {0, 1}}, g.AdjacentPositions(Position{X: 0, Y: 0}))
		assert.Equal(t, []Position{{1, 2}, {2, 1}}, g.AdjacentPositions(Position{X: 2, Y: 2}))
	})

	t.Run("edge has three", func(t *testing.T) {
		assert.Len(t, g.AdjacentPositions(Position{X: 1, Y: 0}), 3)
	})

	t.Run("single row", func(t *testing.T) {
		line := Grid{Width: 3, Height: 1}
		assert.Equal(t, []Position{{0, 0}, {2, 0}}, line.AdjacentPositions(Position{X: 1, Y: 0}))
	})
}

func TestAdjacentTo(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	centre := Position{X: 1, Y: 1}

	for _, n := range g.AdjacentPositions(centre) {
		assert.True(t, g.AdjacentTo(centre, n))
		assert.True(t, g.AdjacentTo(n, centre))
	}
	assert.False(t, g.AdjacentTo(centre, centre))
	assert.False(t, g.AdjacentTo(centre, Position{X: 2, Y: 2}))
	assert.False(t, g.AdjacentTo(Position{X: 0, Y: 0}, Position{X: 0, Y: 2}))
	assert.False(t, g.AdjacentTo(Position{X: 2, Y: 0}, Position{X: 3, Y: 0}))
}

func TestMinDistance(t *testing.T) {
	p := Position{X: 0, Y: 0}
	q := Position{X: 2, Y: 3}

	assert.Equal(t, 5, p.MinDistance(q))
	assert.Equal(t, 5, q.MinDistance(p))
	assert.Equal(t, 0, MinDistance(q, q))
}

func TestShiftedBy(t *testing.T) {
	g := Grid{Width: 2, Height: 2}
	origin := Position{X: 0, Y: 0}

	right, err := g.ShiftedBy(origin, Right)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 0}, right)

	down, err := g.ShiftedBy(origin, Down)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 0, Y: 1}, down)

	_, err = g.ShiftedBy(origin, Up)
	assert.ErrorIs(t, err, ErrCannotMove)
	_, err = g.ShiftedBy(origin, Left)
	assert.ErrorIs(t, err, ErrCannotMove)
	_, err = g.ShiftedBy(Position{X: 1, Y: 1}, Right)
	assert.ErrorIs(t, err, ErrCannotMove)
	_, err = g.ShiftedBy(Position{X: 1, Y: 1}, Down)
	assert.ErrorIs(t, err, ErrCannotMove)
}

func TestDirectionOpposite(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	centre := Position{X: 1, Y: 1}

	for _, d := range Directions {
		there, err := g.ShiftedBy(centre, d)
		require.NoError(t, err)
		back, err := g.ShiftedBy(there, d.Opposite())
		require.NoError(t, err)
		assert.Equal(t, centre, back, "direction %s", d)
	}
}
