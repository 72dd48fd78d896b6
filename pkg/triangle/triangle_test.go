/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package triangle

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/nks676/startracker/pkg/geometry"
	"github.com/nks676/startracker/pkg/star"
	stats "github.com/nks676/startracker/pkg/statistics"
)

/*****************************************************************************************************************/

func TestBuildCanonicalSidesAreSorted(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 0, 0, 1),
		star.NewFromEquatorial(2, 1, 0, 2),
		star.NewFromEquatorial(3, 0.5, 1, 3),
	}

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(idx.Triangles) != 1 {
		t.Fatalf("len(Triangles) = %d, want 1", len(idx.Triangles))
	}

	tri := idx.Triangles[0]
	if !(tri.A <= tri.B && tri.B <= tri.C) {
		t.Errorf("sides not sorted: %+v", tri)
	}
}

/*****************************************************************************************************************/

func TestBuildExcludesPairsBeyondMaxFOV(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 0, 0, 1),
		star.NewFromEquatorial(2, 1, 0, 2),
		star.NewFromEquatorial(3, 90, 0, 3), // far away, should never form a triangle with the others
	}

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(idx.Triangles) != 0 {
		t.Fatalf("len(Triangles) = %d, want 0 (all pairs involving star 3 exceed FOV)", len(idx.Triangles))
	}
}

/*****************************************************************************************************************/

func TestIndexSortedAscendingByA(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 0, 0, 1),
		star.NewFromEquatorial(2, 1, 0, 2),
		star.NewFromEquatorial(3, 0.5, 1, 3),
		star.NewFromEquatorial(4, 2, 2, 4),
		star.NewFromEquatorial(5, 1.5, 0.5, 5),
	}

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(idx.Triangles); i++ {
		if idx.Triangles[i-1].A > idx.Triangles[i].A {
			t.Fatalf("index not sorted ascending by A at position %d", i)
		}
	}
}

// TestBuildNonExactDivisorFOVDoesNotDropCrossRowTriangles exercises a FOV (7°) that does not
// divide 180° evenly, so a shard's row height is strictly less than maxFOVRadians. A triangle
// whose three vertices straddle three consecutive declination rows must still be found by exactly
// one shard — with 7° (Rows=26, row height = 180/26 = 6.923077°), three stars placed just below,
// just above, and one row beyond a row boundary at dec=0 span all three rows while every pairwise
// arc stays within the 7° tolerance.
func TestBuildNonExactDivisorFOVDoesNotDropCrossRowTriangles(t *testing.T) {
	maxFOVRadians := 7 * math.Pi / 180

	stars := []star.Star{
		star.NewFromEquatorial(1, 0, -0.02, 1), // just below the row-12/row-13 boundary at dec=0
		star.NewFromEquatorial(2, 0, 3.44, 2),  // mid row 13
		star.NewFromEquatorial(3, 0, 6.94, 3),  // just above the row-13/row-14 boundary
	}

	idx, err := Build(stars, maxFOVRadians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(idx.Triangles) != 1 {
		t.Fatalf("len(Triangles) = %d, want 1 (triangle spanning three declination rows was dropped)", len(idx.Triangles))
	}
}

/*****************************************************************************************************************/

func TestMatchSelfRoundTrip(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 10, 10, 1),
		star.NewFromEquatorial(2, 10.5, 10, 2),
		star.NewFromEquatorial(3, 10.2, 10.4, 3),
	}

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match := idx.Match(stars[0].Direction, stars[1].Direction, stars[2].Direction, 0.01)

	if match.IsZero() {
		t.Fatalf("expected a match for the exact same triple, got the zero sentinel")
	}
}

/*****************************************************************************************************************/

func TestMatchToleratesSmallNoise(t *testing.T) {
	stars := []star.Star{
		star.NewFromEquatorial(1, 10, 10, 1),
		star.NewFromEquatorial(2, 10.5, 10, 2),
		star.NewFromEquatorial(3, 10.2, 10.4, 3),
	}

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Perturb each direction by a tiny amount (well within the 0.01 rad tolerance).
	noisy := func(v geometry.Vector3) geometry.Vector3 {
		return geometry.Vector3{X: v.X + 1e-5, Y: v.Y - 1e-5, Z: v.Z + 1e-5}.Normalize()
	}

	match := idx.Match(noisy(stars[0].Direction), noisy(stars[1].Direction), noisy(stars[2].Direction), 0.01)

	if match.IsZero() {
		t.Fatalf("expected a match despite small perturbation")
	}
}

/*****************************************************************************************************************/

func TestMatchReturnsZeroWhenNoTriangleQualifies(t *testing.T) {
	idx := &Index{Triangles: []Triangle{{Star1: 1, Star2: 2, Star3: 3, A: 0.001, B: 0.002, C: 0.003}}}

	v1 := geometry.UnitVectorFromEquatorial(0, 0)
	v2 := geometry.UnitVectorFromEquatorial(1, 1)
	v3 := geometry.UnitVectorFromEquatorial(2, -1)

	match := idx.Match(v1, v2, v3, 0.01)

	if !match.IsZero() {
		t.Errorf("expected zero sentinel, got %+v", match)
	}
}

/*****************************************************************************************************************/

func TestDisambiguateRecoversCorrectCorrespondence(t *testing.T) {
	s1 := star.NewFromEquatorial(101, 10, 10, 1)
	s2 := star.NewFromEquatorial(202, 10.5, 10, 2)
	s3 := star.NewFromEquatorial(303, 10.2, 10.4, 3)

	positions := map[int]geometry.Vector3{
		101: s1.Direction,
		202: s2.Direction,
		303: s3.Direction,
	}

	tri := Triangle{Star1: 202, Star2: 303, Star3: 101} // deliberately shuffled vs. observed order

	// Observed directions in a DIFFERENT order than the catalog triple above:
	observed := [3]geometry.Vector3{s1.Direction, s2.Direction, s3.Direction}

	corr, ok := Disambiguate(observed, tri, positions)
	if !ok {
		t.Fatalf("Disambiguate failed to resolve a correspondence")
	}

	if corr.StarID[0] != 101 || corr.StarID[1] != 202 || corr.StarID[2] != 303 {
		t.Errorf("StarID = %v, want [101 202 303]", corr.StarID)
	}
}

/*****************************************************************************************************************/

// fiveStarTestCatalog is the fixed catalog Scenario D and E are run against: five stars close
// enough together that every 3-combination forms a triangle within a 10° FOV.
func fiveStarTestCatalog() []star.Star {
	return []star.Star{
		star.NewFromEquatorial(1, 0, 0, 1),
		star.NewFromEquatorial(2, 1, 0, 2),
		star.NewFromEquatorial(3, 0.5, 1, 3),
		star.NewFromEquatorial(4, 2, 2, 4),
		star.NewFromEquatorial(5, 1.5, 0.5, 5),
	}
}

/*****************************************************************************************************************/

// TestScenarioD_MatchSelfIdentifiesEveryTriple builds the index once from the 5-star catalog and,
// for every i<j<k combination, confirms the matcher called with those exact unit vectors returns a
// triangle whose star-ID set is exactly {catalog[i].id, catalog[j].id, catalog[k].id}.
func TestScenarioD_MatchSelfIdentifiesEveryTriple(t *testing.T) {
	stars := fiveStarTestCatalog()

	idx, err := Build(stars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < len(stars); i++ {
		for j := i + 1; j < len(stars); j++ {
			for k := j + 1; k < len(stars); k++ {
				match := idx.Match(stars[i].Direction, stars[j].Direction, stars[k].Direction, 1e-6)
				if match.IsZero() {
					t.Fatalf("triple (%d,%d,%d): expected a match, got the zero sentinel", i, j, k)
				}

				want := map[int]bool{stars[i].ID: true, stars[j].ID: true, stars[k].ID: true}
				got := map[int]bool{match.Star1: true, match.Star2: true, match.Star3: true}

				if len(got) != len(want) {
					t.Fatalf("triple (%d,%d,%d): ID set = %v, want %v", i, j, k, got, want)
				}
				for id := range want {
					if !got[id] {
						t.Fatalf("triple (%d,%d,%d): ID set = %v, want %v", i, j, k, got, want)
					}
				}
			}
		}
	}
}

/*****************************************************************************************************************/

// TestScenarioE_MatchToleratesGaussianNoise runs the 1000-trial Monte Carlo noise tolerance trial:
// each of the three input directions is perturbed by an isotropic Gaussian with σ = 0.0007 rad
// (via pkg/statistics.NormalDistributedRandomNumber), and with TOLERANCE_RAD = 0.01 the matcher is
// expected to still recover the correct ID set in at least 95% of trials.
func TestScenarioE_MatchToleratesGaussianNoise(t *testing.T) {
	const sigma = 0.0007
	const toleranceRadians = 0.01
	const trials = 1000
	const minSuccessRate = 0.95

	catalogStars := fiveStarTestCatalog()

	idx, err := Build(catalogStars, 10*math.Pi/180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i, j, k := 0, 1, 2
	want := map[int]bool{catalogStars[i].ID: true, catalogStars[j].ID: true, catalogStars[k].ID: true}

	perturb := func(v geometry.Vector3) geometry.Vector3 {
		return geometry.Vector3{
			X: v.X + stats.NormalDistributedRandomNumber(0, sigma),
			Y: v.Y + stats.NormalDistributedRandomNumber(0, sigma),
			Z: v.Z + stats.NormalDistributedRandomNumber(0, sigma),
		}.Normalize()
	}

	successes := 0

	for trial := 0; trial < trials; trial++ {
		match := idx.Match(
			perturb(catalogStars[i].Direction),
			perturb(catalogStars[j].Direction),
			perturb(catalogStars[k].Direction),
			toleranceRadians,
		)

		if match.IsZero() {
			continue
		}

		got := map[int]bool{match.Star1: true, match.Star2: true, match.Star3: true}
		if len(got) != len(want) {
			continue
		}

		matches := true
		for id := range want {
			if !got[id] {
				matches = false
				break
			}
		}
		if matches {
			successes++
		}
	}

	rate := float64(successes) / float64(trials)
	if rate < minSuccessRate {
		t.Errorf("success rate = %.3f (%d/%d), want >= %.2f", rate, successes, trials, minSuccessRate)
	}
}

/*****************************************************************************************************************/
