/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package star

/*****************************************************************************************************************/

import (
	"math"

	"github.com/nks676/startracker/pkg/geometry"
)

/*****************************************************************************************************************/

// Star is a single cataloged entry on the celestial sphere: an integer ID, a unit direction
// vector in the inertial frame, and a visual magnitude (lower is brighter). Stars are immutable
// once loaded — nothing downstream of catalog ingest mutates a Star in place.
type Star struct {
	ID        int              // catalog identity, e.g. a Hipparcos or Gaia source ID
	Direction geometry.Vector3  // unit direction on the celestial sphere, in the inertial frame
	Magnitude float64           // visual magnitude; lower is brighter
}

/*****************************************************************************************************************/

// NewFromEquatorial builds a Star from a right ascension and declination given in degrees,
// converting to the unit direction vector per spec: x = cos(dec)cos(ra), y = cos(dec)sin(ra),
// z = sin(dec).
func NewFromEquatorial(id int, raDeg, decDeg, magnitude float64) Star {
	raRad := raDeg * math.Pi / 180
	decRad := decDeg * math.Pi / 180

	return Star{
		ID:        id,
		Direction: geometry.UnitVectorFromEquatorial(raRad, decRad),
		Magnitude: magnitude,
	}
}

/*****************************************************************************************************************/

// IsUnitNorm reports whether the Star's direction vector has unit magnitude to within the given
// tolerance — the catalog invariant from spec §8.1.
func (s Star) IsUnitNorm(tolerance float64) bool {
	n := s.Direction.Dot(s.Direction)
	return math.Abs(n-1) < tolerance
}

/*****************************************************************************************************************/
