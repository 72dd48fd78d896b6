/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package quaternion provides the minimal unit-quaternion type attitude solutions are expressed
// in, along with Stanley's branch-on-trace extraction from a rotation matrix.
package quaternion

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Quaternion is a unit quaternion (w, x, y, z) representing a rotation, following the scalar-first
// convention.
type Quaternion struct {
	W, X, Y, Z float64
}

/*****************************************************************************************************************/

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

/*****************************************************************************************************************/

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

/*****************************************************************************************************************/

// Normalize returns q scaled to unit norm. A near-zero quaternion is returned unmodified.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n <= 1e-12 {
		return q
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

/*****************************************************************************************************************/

// FromRotationMatrix extracts the unit quaternion equivalent to the 3x3 row-major rotation matrix
// A, using Stanley's method: branch on the sign of the trace and the largest diagonal element so
// the scaling division never approaches zero, regardless of rotation angle.
func FromRotationMatrix(a [3][3]float64) Quaternion {
	tr := a[0][0] + a[1][1] + a[2][2]

	var q Quaternion

	switch {
	case tr > 0:
		s := math.Sqrt(tr+1.0) * 2 // s = 4*qw
		q.W = 0.25 * s
		q.X = (a[2][1] - a[1][2]) / s
		q.Y = (a[0][2] - a[2][0]) / s
		q.Z = (a[1][0] - a[0][1]) / s
	case a[0][0] > a[1][1] && a[0][0] > a[2][2]:
		s := math.Sqrt(1.0+a[0][0]-a[1][1]-a[2][2]) * 2 // s = 4*qx
		q.W = (a[2][1] - a[1][2]) / s
		q.X = 0.25 * s
		q.Y = (a[0][1] + a[1][0]) / s
		q.Z = (a[0][2] + a[2][0]) / s
	case a[1][1] > a[2][2]:
		s := math.Sqrt(1.0+a[1][1]-a[0][0]-a[2][2]) * 2 // s = 4*qy
		q.W = (a[0][2] - a[2][0]) / s
		q.X = (a[0][1] + a[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (a[1][2] + a[2][1]) / s
	default:
		s := math.Sqrt(1.0+a[2][2]-a[0][0]-a[1][1]) * 2 // s = 4*qz
		q.W = (a[1][0] - a[0][1]) / s
		q.X = (a[0][2] + a[2][0]) / s
		q.Y = (a[1][2] + a[2][1]) / s
		q.Z = 0.25 * s
	}

	return q
}

/*****************************************************************************************************************/
