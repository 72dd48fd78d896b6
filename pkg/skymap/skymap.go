/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package skymap partitions the celestial sphere into a coarse longitude/latitude grid, used to
// shard triangle-index construction across goroutines: pkg/triangle buckets stars by the
// declination row of their cell and enumerates triples within a window of rows wide enough that
// no in-FOV triple is missed at a row boundary.
package skymap

/*****************************************************************************************************************/

import (
	"math"

	"github.com/nks676/startracker/pkg/geometry"
)

/*****************************************************************************************************************/

// Grid divides declination into Rows equal-height bands and, within each band, divides right
// ascension into enough columns that no cell exceeds roughly CellRadians across — narrower near
// the poles, where lines of right ascension converge.
type Grid struct {
	Rows        int
	CellRadians float64
}

/*****************************************************************************************************************/

// NewGrid builds a grid whose cells are approximately cellRadians across, which should be at
// least the maximum field of view a triangle can span so that every in-FOV pair shares a cell or
// a neighboring one.
func NewGrid(cellRadians float64) Grid {
	rows := int(math.Ceil(math.Pi / cellRadians))
	if rows < 1 {
		rows = 1
	}

	return Grid{Rows: rows, CellRadians: cellRadians}
}

/*****************************************************************************************************************/

// Cell identifies a grid bucket by its row (declination band) and column (right ascension band
// within that row).
type Cell struct {
	Row, Col int
}

/*****************************************************************************************************************/

func (g Grid) columnsInRow(row int) int {
	// Declination at the row's center (row 0 is the southernmost band):
	decFromPole := (float64(row)+0.5)/float64(g.Rows)*math.Pi - math.Pi/2

	circumference := 2 * math.Pi * math.Cos(decFromPole)
	if circumference < 0 {
		circumference = -circumference
	}

	cols := int(math.Ceil(circumference / g.CellRadians))
	if cols < 1 {
		cols = 1
	}

	return cols
}

/*****************************************************************************************************************/

// Locate returns the cell containing direction v.
func (g Grid) Locate(v geometry.Vector3) Cell {
	raRad, decRad := geometry.EquatorialFromUnitVector(v)

	row := int((decRad + math.Pi/2) / math.Pi * float64(g.Rows))
	if row >= g.Rows {
		row = g.Rows - 1
	}
	if row < 0 {
		row = 0
	}

	cols := g.columnsInRow(row)

	col := int(raRad / (2 * math.Pi) * float64(cols))
	if col >= cols {
		col = cols - 1
	}
	if col < 0 {
		col = 0
	}

	return Cell{Row: row, Col: col}
}

/*****************************************************************************************************************/

// Neighbors returns c together with every adjacent cell (including diagonals, and wrapping around
// in right ascension). Adjacent rows are mapped to columns by index, without accounting for the
// different column counts of neighboring rows.
func (g Grid) Neighbors(c Cell) []Cell {
	var out []Cell

	for dRow := -1; dRow <= 1; dRow++ {
		row := c.Row + dRow
		if row < 0 || row >= g.Rows {
			continue
		}

		cols := g.columnsInRow(row)

		for dCol := -1; dCol <= 1; dCol++ {
			col := ((c.Col+dCol)%cols + cols) % cols
			out = append(out, Cell{Row: row, Col: col})
		}
	}

	return out
}

/*****************************************************************************************************************/
