/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package stats provides small statistical helpers shared by the synthetic raster generator and
// noise-tolerance tests.
package stats

/*****************************************************************************************************************/

import (
	"math/rand"
)

/*****************************************************************************************************************/

// NormalDistributedRandomNumber generates a normally distributed random number.
// mean: the mean of the distribution.
// stdDev: the standard deviation of the distribution.
func NormalDistributedRandomNumber(mean, stdDev float64) float64 {
	return rand.NormFloat64()*stdDev + mean
}

/*****************************************************************************************************************/
