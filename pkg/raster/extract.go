/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import (
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/nks676/startracker/internal/config"
	"github.com/oklog/ulid"
)

/*****************************************************************************************************************/

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

/*****************************************************************************************************************/

func newFrameID() ulid.ULID {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Now(), entropy)
}

/*****************************************************************************************************************/

// Extract runs the full source-extraction pipeline over a provider's raster: statistics and
// threshold derivation, 4-connectivity labeling, and cluster aggregation — the composition of
// spec §§4.1–4.3. The provider signaling width = 0 (decode failure) is reported as an error; an
// empty (N = 0) raster is likewise an error per spec §4.1.
func Extract(provider ImageProvider, cfg config.Config) (*ImageData, error) {
	width, height, pixels, err := provider.Read()
	if err != nil {
		return nil, fmt.Errorf("raster: failed to read image: %w", err)
	}

	if width == 0 {
		return nil, fmt.Errorf("raster: image provider signaled failure (width = 0)")
	}

	if width*height != len(pixels) {
		return nil, fmt.Errorf("raster: pixel count %d does not match %dx%d", len(pixels), width, height)
	}

	stats, err := computeStatistics(pixels, cfg.ThresholdConstant)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}

	mask := buildMask(pixels, stats.threshold)

	labels := label(mask, width, height)

	clusters := buildClusters(pixels, labels, width, cfg.MaxTopClusters)

	return &ImageData{
		FrameID:     newFrameID(),
		Width:       width,
		Height:      height,
		Pixels:      pixels,
		Mean:        stats.mean,
		StdDev:      stats.stdDev,
		Threshold:   stats.threshold,
		Mask:        mask,
		Clusters:    clusters,
		Diagnostics: stats.diagnostics,
	}, nil
}

/*****************************************************************************************************************/
