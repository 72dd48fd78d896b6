/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package projection converts between equatorial coordinates and the gnomonic (tangent-plane)
// projection used by pkg/synth to place catalog sources on a synthetic raster.
package projection

/*****************************************************************************************************************/

import (
	"math"
)

/*****************************************************************************************************************/

var RAD2DEG = 180 / math.Pi

/*****************************************************************************************************************/

var DEG2RAD = math.Pi / 180

/*****************************************************************************************************************/

func Radians(degrees float64) float64 {
	return degrees * DEG2RAD
}

/*****************************************************************************************************************/

func Degrees(radians float64) float64 {
	return radians * RAD2DEG
}

/*****************************************************************************************************************/

// ConvertEquatorialToGnomic projects (ra, dec) onto the tangent plane centered at (ra0, dec0).
// All arguments are in degrees; x and y are dimensionless tangent-plane coordinates (≈ radians
// near the center). Returns (0, 0) if the point is past the tangent plane's horizon
// (cosalt1 < epsilon).
func ConvertEquatorialToGnomic(ra, dec, ra0, dec0 float64) (x, y float64) {
	const epsilon = 1e-10

	ra = Radians(ra)
	dec = Radians(dec)
	ra0 = Radians(ra0)
	dec0 = Radians(dec0)

	cosalt1 := math.Sin(dec0)*math.Sin(dec) + math.Cos(dec0)*math.Cos(dec)*math.Cos(ra-ra0)

	if cosalt1 < epsilon {
		return 0, 0
	}

	x = math.Cos(dec) * math.Sin(ra-ra0) / cosalt1

	y = (math.Cos(dec0)*math.Sin(dec) - math.Sin(dec0)*math.Cos(dec)*math.Cos(ra-ra0)) / cosalt1

	return x, y
}

/*****************************************************************************************************************/

// ConvertGnomicToEquatorial inverts ConvertEquatorialToGnomic: given a tangent-plane offset (x, y)
// and the plate center (ra0, dec0) in degrees, recovers (ra, dec) in degrees.
func ConvertGnomicToEquatorial(x, y, ra0, dec0 float64) (ra, dec float64) {
	ra0 = Radians(ra0)
	dec0 = Radians(dec0)

	rho := math.Hypot(x, y)
	c := math.Atan(rho)

	if rho < 1e-12 {
		return Degrees(ra0), Degrees(dec0)
	}

	sinC, cosC := math.Sin(c), math.Cos(c)

	decRad := math.Asin(cosC*math.Sin(dec0) + y*sinC*math.Cos(dec0)/rho)
	raRad := ra0 + math.Atan2(x*sinC, rho*math.Cos(dec0)*cosC-y*math.Sin(dec0)*sinC)

	return Degrees(raRad), Degrees(decRad)
}

/*****************************************************************************************************************/
