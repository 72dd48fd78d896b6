/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package triangle

/*****************************************************************************************************************/

import (
	"math"

	"github.com/nks676/startracker/pkg/geometry"
)

/*****************************************************************************************************************/

// Correspondence pairs each observed direction with the catalog star ID it was matched to.
type Correspondence struct {
	Observed [3]geometry.Vector3
	StarID   [3]int
}

/*****************************************************************************************************************/

// Disambiguate resolves which catalog vertex (Star1, Star2, or Star3) corresponds to which of the
// three observed directions. The match only establishes that the two triangles' sorted side
// lengths agree — it does not say which physical pair produced which side, since Build sorts a
// triangle's sides and discards that association. This tries all six bijections between the
// observed vertices and the catalog vertices (looked up via positions) and keeps the one whose
// three pairwise arcs agree best with the observed pairwise arcs.
func Disambiguate(observed [3]geometry.Vector3, t Triangle, positions map[int]geometry.Vector3) (Correspondence, bool) {
	p1, ok1 := positions[t.Star1]
	p2, ok2 := positions[t.Star2]
	p3, ok3 := positions[t.Star3]

	if !ok1 || !ok2 || !ok3 {
		return Correspondence{}, false
	}

	catalog := [3]geometry.Vector3{p1, p2, p3}
	catalogID := [3]int{t.Star1, t.Star2, t.Star3}

	obsArc := [3]float64{
		geometry.Arc(observed[0], observed[1]),
		geometry.Arc(observed[1], observed[2]),
		geometry.Arc(observed[2], observed[0]),
	}

	bestErr := math.Inf(1)
	var bestPerm [3]int

	for _, perm := range permutations3 {
		catArc := [3]float64{
			geometry.Arc(catalog[perm[0]], catalog[perm[1]]),
			geometry.Arc(catalog[perm[1]], catalog[perm[2]]),
			geometry.Arc(catalog[perm[2]], catalog[perm[0]]),
		}

		errL1 := math.Abs(catArc[0]-obsArc[0]) + math.Abs(catArc[1]-obsArc[1]) + math.Abs(catArc[2]-obsArc[2])

		if errL1 < bestErr {
			bestErr = errL1
			bestPerm = perm
		}
	}

	return Correspondence{
		Observed: observed,
		StarID:   [3]int{catalogID[bestPerm[0]], catalogID[bestPerm[1]], catalogID[bestPerm[2]]},
	}, true
}

/*****************************************************************************************************************/

// permutations3 enumerates every bijection from index (0,1,2) to itself.
var permutations3 = [][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

/*****************************************************************************************************************/
