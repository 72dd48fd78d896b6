/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/spatial/vptree"

	"github.com/nks676/startracker/pkg/geometry"
	"github.com/nks676/startracker/pkg/star"
)

/*****************************************************************************************************************/

// point is a catalog star's unit direction, wrapped to satisfy vptree.Comparable via Euclidean
// distance — a reasonable proxy for small angular separations, since two unit vectors within a
// few degrees of each other are also close in straight-line distance.
type point struct {
	ID        int
	Direction geometry.Vector3
}

/*****************************************************************************************************************/

// Distance implements vptree.Comparable.
func (p point) Distance(other vptree.Comparable) float64 {
	o := other.(point)

	dx := p.Direction.X - o.Direction.X
	dy := p.Direction.Y - o.Direction.Y
	dz := p.Direction.Z - o.Direction.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

/*****************************************************************************************************************/

// SpatialIndex is a vp-tree over a catalog's ingested star directions, used to find the nearest
// cataloged neighbor of an arbitrary direction in O(log n) rather than a linear scan — the
// teacher's own quad/spatial matching used a vp-tree for exactly this kind of nearest-direction
// lookup, just over 4-D quad hashes instead of 3-D unit vectors.
type SpatialIndex struct {
	tree *vptree.Tree
}

/*****************************************************************************************************************/

// NewSpatialIndex builds a SpatialIndex over stars.
func NewSpatialIndex(stars []star.Star) (*SpatialIndex, error) {
	comparables := make([]vptree.Comparable, len(stars))

	for i, s := range stars {
		comparables[i] = point{ID: s.ID, Direction: s.Direction}
	}

	tree, err := vptree.New(comparables, 1, nil)
	if err != nil {
		return nil, err
	}

	return &SpatialIndex{tree: tree}, nil
}

/*****************************************************************************************************************/

// Nearest returns the catalog ID of the star whose direction is closest to v, and the Euclidean
// distance between them.
func (idx *SpatialIndex) Nearest(v geometry.Vector3) (id int, distance float64) {
	nearest, dist := idx.tree.Nearest(point{Direction: v})
	return nearest.(point).ID, dist
}

/*****************************************************************************************************************/

// Deduplicate drops any star within radiusRadians (great-circle, approximated here by the
// equivalent straight-line chord distance) of a brighter star already kept, via repeated nearest-
// neighbor lookups against a SpatialIndex built incrementally over the stars kept so far. This
// matters because a radial search against more than one catalog (or a generous search radius
// against a single one) routinely returns the same physical star more than once; feeding
// duplicates into triangle enumeration would silently inflate the index with redundant, otherwise
// identical triangles.
func Deduplicate(stars []star.Star, radiusRadians float64) ([]star.Star, error) {
	if len(stars) == 0 {
		return stars, nil
	}

	sorted := make([]star.Star, len(stars))
	copy(sorted, stars)

	// Brightest (lowest magnitude) first, so a duplicate always loses to the brighter detection.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Magnitude < sorted[j-1].Magnitude; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	// Chord distance for a given great-circle separation θ is 2*sin(θ/2); for the small angles
	// this module deals with, that's within a fraction of a percent of θ itself.
	chordRadius := 2 * math.Sin(radiusRadians/2)

	kept := []star.Star{sorted[0]}

	for _, s := range sorted[1:] {
		idx, err := NewSpatialIndex(kept)
		if err != nil {
			return nil, err
		}

		_, dist := idx.Nearest(s.Direction)
		if dist > chordRadius {
			kept = append(kept, s)
		}
	}

	return kept, nil
}

/*****************************************************************************************************************/
