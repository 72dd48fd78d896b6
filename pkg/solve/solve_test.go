/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package solve

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/nks676/startracker/internal/config"
	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/catalog"
	"github.com/nks676/startracker/pkg/synth"
)

/*****************************************************************************************************************/

func testCatalog() (astrometry.ICRSEquatorialCoordinate, []catalog.Row) {
	center := astrometry.ICRSEquatorialCoordinate{RA: 83.8, Dec: -5.4}

	rows := []catalog.Row{
		{ID: 1, RA: center.RA, Dec: center.Dec, Magnitude: 1},
		{ID: 2, RA: center.RA + 0.6, Dec: center.Dec, Magnitude: 2},
		{ID: 3, RA: center.RA + 0.2, Dec: center.Dec + 0.7, Magnitude: 2},
		{ID: 4, RA: center.RA - 0.5, Dec: center.Dec - 0.4, Magnitude: 3},
	}

	return center, rows
}

/*****************************************************************************************************************/

func TestSolveRecoversBoresightFromSyntheticField(t *testing.T) {
	center, rows := testCatalog()

	field := synth.Generate(256, 256, center, rows, synth.Params{
		PixelScale:    0.01,
		Background:    100,
		ReadNoise:     1.5,
		SeeingPixels:  2,
		PeakIntensity: 60000,
	})

	cfg := config.Default()
	cfg.MaxVmag = 10

	result, err := Solve(field, rows, Params{Config: cfg, PixelScaleX: 0.01, PixelScaleY: 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Boresight.RA-center.RA) > 0.5 || math.Abs(result.Boresight.Dec-center.Dec) > 0.5 {
		t.Errorf("Boresight = %+v, want near %+v", result.Boresight, center)
	}
}

/*****************************************************************************************************************/

func TestSolveInsufficientClustersIsError(t *testing.T) {
	center, rows := testCatalog()

	field := synth.Generate(64, 64, center, rows[:1], synth.Params{
		PixelScale:    0.01,
		Background:    100,
		ReadNoise:     0.5,
		SeeingPixels:  2,
		PeakIntensity: 60000,
	})

	cfg := config.Default()

	_, err := Solve(field, rows[:1], Params{Config: cfg, PixelScaleX: 0.01, PixelScaleY: 0.01})
	if err != ErrInsufficientClusters {
		t.Fatalf("error = %v, want ErrInsufficientClusters", err)
	}
}

/*****************************************************************************************************************/
