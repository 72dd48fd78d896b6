/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package astrometry carries the shared equatorial-coordinate type used at the ingest/CLI
// boundary — FITS headers, catalog rows, and ADQL query parameters are all naturally expressed
// as (RA, Dec) in degrees, even though the core algorithms work exclusively in unit vectors.
package astrometry

/*****************************************************************************************************************/

import (
	"math"

	"github.com/nks676/startracker/pkg/geometry"
)

/*****************************************************************************************************************/

// ICRSEquatorialCoordinate is a point on the celestial sphere expressed in the International
// Celestial Reference System, right ascension and declination both in degrees.
type ICRSEquatorialCoordinate struct {
	RA  float64
	Dec float64
}

/*****************************************************************************************************************/

// ToVector3 converts the coordinate to a unit direction vector on the celestial sphere.
func (eq ICRSEquatorialCoordinate) ToVector3() geometry.Vector3 {
	return geometry.UnitVectorFromEquatorial(eq.RA*math.Pi/180, eq.Dec*math.Pi/180)
}

/*****************************************************************************************************************/

// FromVector3 recovers an ICRSEquatorialCoordinate (in degrees) from a unit direction vector.
func FromVector3(v geometry.Vector3) ICRSEquatorialCoordinate {
	raRad, decRad := geometry.EquatorialFromUnitVector(v)
	return ICRSEquatorialCoordinate{
		RA:  raRad * 180 / math.Pi,
		Dec: decRad * 180 / math.Pi,
	}
}

/*****************************************************************************************************************/
