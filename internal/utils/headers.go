/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package utils resolves plate coordinates and dimensions from FITS headers, falling back to
// values the caller already has when a header is missing.
package utils

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/observerly/iris/pkg/fits"
)

/*****************************************************************************************************************/

func ResolveOrExtractRAFromHeaders(value float32, header fits.FITSHeader) (float32, error) {
	// First, pick a candidate RA (v):
	v := value

	// If the candidate RA (v) is NaN, try to get it from the header:
	if math.IsNaN(float64(v)) {
		ra, exists := header.Floats["RA"]
		if !exists {
			return float32(math.NaN()), fmt.Errorf("ra header not found in the supplied FITS file")
		}
		v = ra.Value
	}

	// Validate the candidate RA (v) is a valid float32:
	if math.IsNaN(float64(v)) {
		return float32(math.NaN()), fmt.Errorf("ra value needs to be a valid float32")
	}

	// Validate the candidate RA (v) is within the range [0, 360]:
	if v < 0 || v > 360 {
		return float32(math.NaN()), fmt.Errorf("ra value is out of range: %f", v)
	}

	// Return the candidate RA (v):
	return v, nil
}

/*****************************************************************************************************************/

func ResolveOrExtractDecFromHeaders(value float32, header fits.FITSHeader) (float32, error) {
	// First, pick a candidate Dec (v):
	v := value

	// If the candidate Dec (v) is NaN, try to get it from the header:
	if math.IsNaN(float64(v)) {
		dec, exists := header.Floats["DEC"]
		if !exists {
			return float32(math.NaN()), fmt.Errorf("dec header not found in the supplied FITS file")
		}
		v = dec.Value
	}

	// Validate the candidate Dec (v) is a valid float32:
	if math.IsNaN(float64(v)) {
		return float32(math.NaN()), fmt.Errorf("dec value needs to be a valid float32")
	}

	// Validate the candidate Dec (v) is within the range [-90, 90]:
	if v < -90 || v > 90 {
		return float32(math.NaN()), fmt.Errorf("dec value is out of range: %f", v)
	}

	// Return the candidate Dec (v):
	return v, nil
}

/*****************************************************************************************************************/

func ExtractImageWidthFromHeaders(header fits.FITSHeader) (int32, error) {
	if header.Naxis1 <= 0 {
		return 0, fmt.Errorf("naxis1 (image width) header not found or invalid in the supplied FITS file")
	}

	return int32(header.Naxis1), nil
}

/*****************************************************************************************************************/

func ExtractImageHeightFromHeaders(header fits.FITSHeader) (int32, error) {
	if header.Naxis2 <= 0 {
		return 0, fmt.Errorf("naxis2 (image height) header not found or invalid in the supplied FITS file")
	}

	return int32(header.Naxis2), nil
}

/*****************************************************************************************************************/
