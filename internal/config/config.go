/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package config centralizes the tunables that the original source carried as compile-time
// constants (THRESHOLD_CONSTANT, MAX_FOV_RAD, TOLERANCE_RAD, ...), so unit tests can vary them
// without rebuilding and so a CLI can bind them to flags, exactly as the teacher's own
// internal/solver and internal/indexer commands bind their parameters via cobra.
package config

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Config holds every tunable recognized by the core pipeline.
type Config struct {
	// ThresholdConstant is the multiplier k on σ for the detection threshold T = μ + k·σ.
	ThresholdConstant float64

	// MaxTopClusters caps the number of retained clusters per image, brightest first.
	MaxTopClusters int

	// MaxFOVRadians is the maximum pairwise arc (radians) admitted into the triangle index.
	MaxFOVRadians float64

	// ToleranceRadians is the matcher's tolerance on each canonical arc, in radians.
	ToleranceRadians float64

	// MaxVmag is the catalog magnitude cutoff; rows fainter than this are dropped at ingest.
	MaxVmag float64
}

/*****************************************************************************************************************/

// Default returns the tunables recommended by the specification: a 5σ detection threshold, a
// cap of 50 retained clusters, a 10° field of view, a 0.01 rad (~0.57°) matcher tolerance, and a
// visual magnitude cutoff of 6.0.
func Default() Config {
	return Config{
		ThresholdConstant: 5.0,
		MaxTopClusters:    50,
		MaxFOVRadians:     10.0 * math.Pi / 180.0,
		ToleranceRadians:  0.01,
		MaxVmag:           6.0,
	}
}

/*****************************************************************************************************************/
