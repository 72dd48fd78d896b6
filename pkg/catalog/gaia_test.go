/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

import (
	"math"
	"testing"

	"github.com/nks676/startracker/pkg/astrometry"
)

/*****************************************************************************************************************/

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

/*****************************************************************************************************************/

func IsWithinICRSPolarRadius(ra, dec, r float64) bool {
	d := math.Acos(math.Max(-1.0, math.Min(1.0, math.Cos(radians(dec))*math.Cos(radians(ra)))))
	return d <= radians(r)
}

/*****************************************************************************************************************/

func TestGAIAQueryExecutedSuccessfully(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network-bound GAIA TAP query in short mode")
	}

	q := NewGAIAServiceClient()

	rows, err := q.PerformRadialSearch(astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0}, 2.5, 10)
	if err != nil {
		t.Errorf("failed to execute query: %v", err)
	}

	if len(rows) == 0 {
		t.Errorf("no rows returned")
	}

	for _, row := range rows {
		if !IsWithinICRSPolarRadius(row.RA, row.Dec, 2.5) {
			t.Errorf("row is not within the search radius")
		}
	}
}

/*****************************************************************************************************************/
