/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package raster implements source extraction: turning a calibrated rectangular raster of pixel
// intensities into a small list of bright, sub-pixel-accurate centroids. It is grounded directly
// on original_source/src/fits/fits_io.{h,cpp} — the union-find labeler, the threshold fallback,
// and the intensity-weighted centroiding are all translated from that C++ implementation into
// idiomatic Go, with statistics handed off to gonum.org/v1/gonum/stat.
package raster

/*****************************************************************************************************************/

import "github.com/oklog/ulid"

/*****************************************************************************************************************/

// Pixel is a single foreground pixel belonging to exactly one Cluster.
type Pixel struct {
	X, Y      int     // integer pixel coordinates
	Intensity float64 // calibrated intensity at (X, Y)
}

/*****************************************************************************************************************/

// Cluster is a connected foreground component discovered by the labeler. ID is the union-find
// root label at the time the cluster was built — a provisional, per-frame identity, not a stable
// external one.
type Cluster struct {
	ID             int
	Pixels         []Pixel
	CentroidX      float64 // intensity-weighted centroid X
	CentroidY      float64 // intensity-weighted centroid Y
	TotalIntensity float64 // Σ pixel.Intensity over Pixels; > 0 for every cluster that survives
}

/*****************************************************************************************************************/

// ImageData is the per-frame artifact produced by Extract: the raw raster, derived statistics,
// the foreground mask, and the ordered (descending by TotalIntensity, capped) cluster list.
type ImageData struct {
	FrameID ulid.ULID // correlates this frame's extraction, matching, and attitude log lines

	Width, Height int
	Pixels        []float64

	Mean      float64
	StdDev    float64
	Threshold float64
	Mask      []bool

	Clusters []Cluster

	// Diagnostics carries non-fatal warnings raised during extraction — e.g. the saturation-guard
	// threshold fallback — so a caller can log them without the core reaching for a logger itself.
	Diagnostics []string
}

/*****************************************************************************************************************/
