/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package triangle

/*****************************************************************************************************************/

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nks676/startracker/pkg/geometry"
	"github.com/nks676/startracker/pkg/skymap"
	"github.com/nks676/startracker/pkg/star"
)

/*****************************************************************************************************************/

// Build enumerates every triple of stars whose three pairwise arcs are all within maxFOVRadians,
// canonicalizes each into sorted (a, b, c) order, and returns the result sorted ascending by a —
// ready for Match's binary search.
//
// Enumeration is sharded across the sky by declination band (pkg/skymap). A row's height
// (π/grid.Rows) is not necessarily maxFOVRadians itself — NewGrid rounds the row count up, so the
// row height can be anywhere up to maxFOVRadians — so two stars within maxFOVRadians of each other
// can land as many as ceil(maxFOVRadians / rowHeight) rows apart, not just one. Each shard widens
// its candidate window by that span and owns the triangles whose minimum-row vertex is its own
// row, so no triangle is counted twice and none is silently dropped at a row boundary.
func Build(stars []star.Star, maxFOVRadians float64) (*Index, error) {
	if maxFOVRadians <= 0 {
		return &Index{}, nil
	}

	grid := skymap.NewGrid(maxFOVRadians)

	rowHeight := math.Pi / float64(grid.Rows)
	rowSpan := int(math.Ceil(maxFOVRadians / rowHeight))
	if rowSpan < 1 {
		rowSpan = 1
	}

	rows := make([][]int, grid.Rows) // row -> indices into `stars`
	starRow := make([]int, len(stars))

	for i, s := range stars {
		cell := grid.Locate(s.Direction)
		rows[cell.Row] = append(rows[cell.Row], i)
		starRow[i] = cell.Row
	}

	results := make([][]Triangle, grid.Rows)

	g, _ := errgroup.WithContext(context.Background())

	for r := 0; r < grid.Rows; r++ {
		r := r

		g.Go(func() error {
			results[r] = buildShard(stars, starRow, rows, r, rowSpan, maxFOVRadians)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Triangle
	for _, shard := range results {
		all = append(all, shard...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].A < all[j].A
	})

	return &Index{Triangles: all}, nil
}

/*****************************************************************************************************************/

func buildShard(stars []star.Star, starRow []int, rows [][]int, row, rowSpan int, maxFOVRadians float64) []Triangle {
	var candidates []int

	for r := row - rowSpan; r <= row+rowSpan; r++ {
		if r < 0 || r >= len(rows) {
			continue
		}
		candidates = append(candidates, rows[r]...)
	}

	var triangles []Triangle

	n := len(candidates)

	for ii := 0; ii < n; ii++ {
		i := candidates[ii]

		for jj := ii + 1; jj < n; jj++ {
			j := candidates[jj]

			distAB := geometry.Arc(stars[i].Direction, stars[j].Direction)
			if distAB > maxFOVRadians {
				continue
			}

			for kk := jj + 1; kk < n; kk++ {
				k := candidates[kk]

				minRow := starRow[i]
				if starRow[j] < minRow {
					minRow = starRow[j]
				}
				if starRow[k] < minRow {
					minRow = starRow[k]
				}
				if minRow != row {
					continue // owned by a different shard
				}

				distAC := geometry.Arc(stars[i].Direction, stars[k].Direction)
				if distAC > maxFOVRadians {
					continue
				}

				distBC := geometry.Arc(stars[j].Direction, stars[k].Direction)
				if distBC > maxFOVRadians {
					continue
				}

				sides := [3]float64{distAB, distAC, distBC}
				sort.Float64s(sides[:])

				triangles = append(triangles, Triangle{
					Star1: stars[i].ID,
					Star2: stars[j].ID,
					Star3: stars[k].ID,
					A:     sides[0],
					B:     sides[1],
					C:     sides[2],
				})
			}
		}
	}

	return triangles
}

/*****************************************************************************************************************/
