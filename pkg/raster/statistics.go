/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

/*****************************************************************************************************************/

// statistics holds the mean, standard deviation, and derived detection threshold for a raster,
// plus any diagnostic messages raised while deriving the threshold.
type statistics struct {
	mean, stdDev, threshold float64
	diagnostics             []string
}

/*****************************************************************************************************************/

// computeStatistics computes the mean and standard deviation of the pixel raster via
// gonum.org/v1/gonum/stat, tracks the maximum intensity, and derives the detection threshold
// T = μ + k·σ. If T would be at or above the maximum observed intensity — no significant
// above-background feature exists under the k·σ rule — it falls back to T = μ + 0.8·(M − μ) and
// records a diagnostic, per spec §4.1's saturation guard.
func computeStatistics(pixels []float64, thresholdConstant float64) (statistics, error) {
	n := len(pixels)

	if n == 0 {
		return statistics{}, fmt.Errorf("raster: cannot compute statistics over zero pixels")
	}

	// Use the population (divide-by-N) variant to match spec's σ = sqrt(Σxᵢ²/N − μ²) exactly,
	// rather than gonum's default unbiased (n-1) sample estimator.
	mean, stdDev := stat.PopMeanStdDev(pixels, nil)

	max := pixels[0]
	for _, v := range pixels[1:] {
		if v > max {
			max = v
		}
	}

	threshold := mean + thresholdConstant*stdDev

	var diagnostics []string

	if threshold >= max {
		diagnostics = append(diagnostics, fmt.Sprintf(
			"computed threshold %.6f exceeds max intensity %.6f; falling back to 0.8*(max-mean) rule",
			threshold, max,
		))
		threshold = mean + 0.8*(max-mean)
	}

	return statistics{
		mean:        mean,
		stdDev:      stdDev,
		threshold:   threshold,
		diagnostics: diagnostics,
	}, nil
}

/*****************************************************************************************************************/

// buildMask returns the boolean foreground mask: mask[i] = pixels[i] >= threshold.
func buildMask(pixels []float64, threshold float64) []bool {
	mask := make([]bool, len(pixels))
	for i, v := range pixels {
		mask[i] = v >= threshold
	}
	return mask
}

/*****************************************************************************************************************/
