/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package triangle

/*****************************************************************************************************************/

import (
	"math"
	"sort"

	"github.com/nks676/startracker/pkg/geometry"
)

/*****************************************************************************************************************/

// Match canonicalizes the observed triple (v1, v2, v3) into sorted arcs and searches idx for the
// catalog triangle whose sorted arcs lie within toleranceRadians on every side, returning the
// closest such match by summed absolute error. It returns Zero if no triangle qualifies.
func (idx *Index) Match(v1, v2, v3 geometry.Vector3, toleranceRadians float64) Triangle {
	sides := [3]float64{
		geometry.Arc(v1, v2),
		geometry.Arc(v2, v3),
		geometry.Arc(v3, v1),
	}
	sort.Float64s(sides[:])

	obsA, obsB, obsC := sides[0], sides[1], sides[2]

	lo := sort.Search(len(idx.Triangles), func(i int) bool {
		return idx.Triangles[i].A >= obsA-toleranceRadians
	})

	best := Zero
	bestError := math.Inf(1)

	for i := lo; i < len(idx.Triangles); i++ {
		t := idx.Triangles[i]

		if t.A > obsA+toleranceRadians {
			break
		}

		if math.Abs(t.B-obsB) >= toleranceRadians || math.Abs(t.C-obsC) >= toleranceRadians {
			continue
		}

		errL1 := math.Abs(t.A-obsA) + math.Abs(t.B-obsB) + math.Abs(t.C-obsC)
		if errL1 < bestError {
			bestError = errL1
			best = t
		}
	}

	return best
}

/*****************************************************************************************************************/
