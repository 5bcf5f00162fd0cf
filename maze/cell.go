package maze

// Cell is a read-only view of the four sides of one maze cell.
// Sides on the outer edge of the maze always count as walls.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north (up) side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south (down) side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east (right) side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west (left) side of the cell.
	WestWall bool
}

// HasWall reports whether the side of the cell facing d is walled.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case Up:
		return c.NorthWall
	case Down:
		return c.SouthWall
	case Left:
		return c.WestWall
	default:
		return c.EastWall
	}
}

// cellAt builds the view of pos from a wall set.
func cellAt(g Grid, walls WallSet, pos Position) Cell {
	side := func(d Direction) bool {
		next, err := g.ShiftedBy(pos, d)
		if err != nil {
			return true
		}
		separated, _ := SeparatedByWall(g, pos, next, walls)
		return separated
	}

	return Cell{
		NorthWall: side(Up),
		SouthWall: side(Down),
		EastWall:  side(Right),
		WestWall:  side(Left),
	}
}
