/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package fov derives the angular field of view a raster subtends from its pixel dimensions and
// plate scale, used to bound catalog radial searches.
package fov

import "math"

/*****************************************************************************************************************/

type PixelScale struct {
	X float64 // Pixel size in the x direction (in degrees)
	Y float64 // Pixel size in the y direction (in degrees)
}

/*****************************************************************************************************************/

func GetRadialExtent(
	xs float64,
	ys float64,
	pixelScale PixelScale,
) float64 {
	// Calculate the field of view in the x direction (in degrees):
	xr := pixelScale.X * xs

	// Calculate the field of view in the y direction (in degrees):
	yr := pixelScale.Y * ys

	r := math.Min(xr, yr)

	// Calculate the radial field of view (in degrees):
	return math.Sqrt(r*r + r*r)
}

/*****************************************************************************************************************/

// RadiansToDegreesFOV converts a radial field of view in radians (as carried by the solver
// configuration) into degrees, for use with GetRadialExtent-style pixel-scale geometry.
func RadiansToDegreesFOV(radians float64) float64 {
	return radians * 180 / math.Pi
}

/*****************************************************************************************************************/
