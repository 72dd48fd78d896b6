/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package geometry

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

/*****************************************************************************************************************/

func TestDistanceBetweenTwoCartesianPoints(t *testing.T) {
	got := DistanceBetweenTwoCartesianPoints(0, 0, 3, 4)
	if got != 5.0 {
		t.Errorf("DistanceBetweenTwoCartesianPoints(0,0,3,4) = %f; want 5", got)
	}
}

/*****************************************************************************************************************/

func TestVector3DotOrthogonal(t *testing.T) {
	a := Vector3{X: 1, Y: 0, Z: 0}
	b := Vector3{X: 0, Y: 1, Z: 0}

	if d := a.Dot(b); d != 0 {
		t.Errorf("Dot() = %v, want 0", d)
	}
}

/*****************************************************************************************************************/

func TestVector3CrossProducesOrthogonalVector(t *testing.T) {
	a := Vector3{X: 1, Y: 0, Z: 0}
	b := Vector3{X: 0, Y: 1, Z: 0}

	c := a.Cross(b)

	if !almostEqual(c.X, 0, 1e-12) || !almostEqual(c.Y, 0, 1e-12) || !almostEqual(c.Z, 1, 1e-12) {
		t.Errorf("Cross() = %+v, want (0, 0, 1)", c)
	}
}

/*****************************************************************************************************************/

func TestVector3NormalizeUnitLength(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}

	n := v.Normalize()

	if !almostEqual(n.Norm(), 1.0, 1e-12) {
		t.Errorf("Normalize() magnitude = %v, want 1", n.Norm())
	}
}

/*****************************************************************************************************************/

func TestVector3NormalizeNearZeroIsUnmodified(t *testing.T) {
	v := Vector3{X: 1e-12, Y: 0, Z: 0}

	n := v.Normalize()

	if n != v {
		t.Errorf("Normalize() of near-zero vector = %+v, want unmodified %+v", n, v)
	}
}

/*****************************************************************************************************************/

func TestClampedDotClampsOutOfRangeValues(t *testing.T) {
	a := Vector3{X: 1.0000001, Y: 0, Z: 0}
	b := Vector3{X: 1, Y: 0, Z: 0}

	if d := ClampedDot(a, b); d > 1 {
		t.Errorf("ClampedDot() = %v, want <= 1", d)
	}
}

/*****************************************************************************************************************/

func TestArcIdenticalVectorsIsZero(t *testing.T) {
	v := Vector3{X: 1, Y: 0, Z: 0}

	if arc := Arc(v, v); !almostEqual(arc, 0, 1e-9) {
		t.Errorf("Arc(v, v) = %v, want 0", arc)
	}
}

/*****************************************************************************************************************/

func TestArcOrthogonalVectorsIsHalfPi(t *testing.T) {
	a := Vector3{X: 1, Y: 0, Z: 0}
	b := Vector3{X: 0, Y: 1, Z: 0}

	if arc := Arc(a, b); !almostEqual(arc, math.Pi/2, 1e-9) {
		t.Errorf("Arc(a, b) = %v, want pi/2", arc)
	}
}

/*****************************************************************************************************************/

func TestEquatorialUnitVectorRoundTrip(t *testing.T) {
	cases := []struct{ ra, dec float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 4},
		{3 * math.Pi / 2, -math.Pi / 6},
	}

	for _, c := range cases {
		v := UnitVectorFromEquatorial(c.ra, c.dec)

		if !almostEqual(v.Norm(), 1.0, 1e-9) {
			t.Errorf("UnitVectorFromEquatorial(%v, %v) norm = %v, want 1", c.ra, c.dec, v.Norm())
		}

		ra, dec := EquatorialFromUnitVector(v)

		if !almostEqual(ra, c.ra, 1e-9) || !almostEqual(dec, c.dec, 1e-9) {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", c.ra, c.dec, ra, dec)
		}
	}
}

/*****************************************************************************************************************/
