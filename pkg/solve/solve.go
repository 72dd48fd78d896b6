/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package solve is the top-level orchestrator tying source extraction, triangle matching, and
// TRIAD attitude determination into a single lost-in-space solve: given a raster and a catalog
// covering its approximate field of view, it returns the camera's attitude quaternion with no
// prior knowledge of orientation beyond the search center used to bound the catalog query.
package solve

/*****************************************************************************************************************/

import (
	"errors"
	"math"

	"github.com/oklog/ulid"

	"github.com/nks676/startracker/internal/config"
	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/attitude"
	"github.com/nks676/startracker/pkg/catalog"
	"github.com/nks676/startracker/pkg/geometry"
	"github.com/nks676/startracker/pkg/quaternion"
	"github.com/nks676/startracker/pkg/raster"
	"github.com/nks676/startracker/pkg/triangle"
)

/*****************************************************************************************************************/

// maxCandidateClusters bounds how many of the brightest extracted clusters are tried as triangle
// vertices. Clusters are already sorted brightest-first by raster.Extract, so the true stars in a
// typical frame are overwhelmingly likely to be among the first few; trying all of them would
// make the O(n^3) candidate enumeration scale with image noise rather than star count.
const maxCandidateClusters = 12

/*****************************************************************************************************************/

// ErrInsufficientClusters is returned when fewer than three sources were extracted — TRIAD via a
// single triangle match needs at least three.
var ErrInsufficientClusters = errors.New("solve: fewer than three sources were extracted from the image")

/*****************************************************************************************************************/

// ErrNoTriangleMatch is returned when no combination of extracted clusters forms a triangle that
// matches any entry in the catalog's triangle index.
var ErrNoTriangleMatch = errors.New("solve: no extracted triangle matched the catalog index")

/*****************************************************************************************************************/

// Params configures a single solve attempt.
type Params struct {
	Config      config.Config
	PixelScaleX float64 // degrees/pixel
	PixelScaleY float64 // degrees/pixel
}

/*****************************************************************************************************************/

// Result is the outcome of a successful solve.
type Result struct {
	FrameID    ulid.ULID
	Quaternion quaternion.Quaternion
	Boresight  astrometry.ICRSEquatorialCoordinate
	Image      *raster.ImageData
}

/*****************************************************************************************************************/

// rowProvider adapts an already-fetched slice of catalog rows to catalog.Provider, for callers
// who performed the radial search (or loaded a cache) themselves.
type rowProvider []catalog.Row

func (p rowProvider) Rows() ([]catalog.Row, error) { return []catalog.Row(p), nil }

/*****************************************************************************************************************/

// bodyDirection converts a cluster centroid, in pixel coordinates, into a unit direction in the
// camera's body frame under a pinhole model: the optical axis is +Z, and pixel offsets from the
// frame center are converted to small angles via the plate scale before normalizing onto the unit
// sphere. This never depends on an attitude guess — only on the camera's own intrinsics — so it
// is exactly the invariant quantity triangle matching needs.
func bodyDirection(cx, cy float64, width, height int, pixelScaleX, pixelScaleY float64) geometry.Vector3 {
	u := (cx - float64(width)/2) * pixelScaleX * math.Pi / 180
	v := (cy - float64(height)/2) * pixelScaleY * math.Pi / 180

	return geometry.Vector3{X: u, Y: v, Z: 1}.Normalize()
}

/*****************************************************************************************************************/

// Solve extracts sources from provider, builds a fresh triangle index over rows, and
// searches combinations of the brightest extracted clusters for one whose triangle matches the
// index — recovering star identities and, from them, the attitude quaternion via TRIAD.
func Solve(provider raster.ImageProvider, rows []catalog.Row, params Params) (*Result, error) {
	img, err := raster.Extract(provider, params.Config)
	if err != nil {
		return nil, err
	}

	if len(img.Clusters) < 3 {
		return nil, ErrInsufficientClusters
	}

	stars, err := catalog.Ingest(rowProvider(rows), params.Config.MaxVmag)
	if err != nil {
		return nil, err
	}

	idx, err := triangle.Build(stars, params.Config.MaxFOVRadians)
	if err != nil {
		return nil, err
	}

	positions := make(map[int]geometry.Vector3, len(stars))
	for _, s := range stars {
		positions[s.ID] = s.Direction
	}

	n := len(img.Clusters)
	if n > maxCandidateClusters {
		n = maxCandidateClusters
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				result, ok := trySolve(img, []int{i, j, k}, positions, idx, params)
				if ok {
					return result, nil
				}
			}
		}
	}

	return nil, ErrNoTriangleMatch
}

/*****************************************************************************************************************/

func trySolve(
	img *raster.ImageData,
	indices []int,
	positions map[int]geometry.Vector3,
	idx *triangle.Index,
	params Params,
) (*Result, bool) {
	bodies := [3]geometry.Vector3{}
	for n, i := range indices {
		c := img.Clusters[i]
		bodies[n] = bodyDirection(c.CentroidX, c.CentroidY, img.Width, img.Height, params.PixelScaleX, params.PixelScaleY)
	}

	t := idx.Match(bodies[0], bodies[1], bodies[2], params.Config.ToleranceRadians)
	if t.IsZero() {
		return nil, false
	}

	corr, ok := triangle.Disambiguate(bodies, t, positions)
	if !ok {
		return nil, false
	}

	obs := make([]attitude.Observation, 3)
	for i := range obs {
		obs[i] = attitude.Observation{
			Body:     corr.Observed[i],
			Inertial: positions[corr.StarID[i]],
			Weight:   1,
		}
	}

	q, err := attitude.Solve(obs)
	if err != nil {
		return nil, false
	}

	boresight := astrometry.FromVector3(attitude.BoresightDirection(q))

	return &Result{
		FrameID:    img.FrameID,
		Quaternion: q,
		Boresight:  boresight,
		Image:      img,
	}, true
}

/*****************************************************************************************************************/
