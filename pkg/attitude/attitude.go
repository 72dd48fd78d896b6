/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package attitude solves Wahba's problem via TRIAD: given two paired direction observations (one
// pair in the body/camera frame, the other in the inertial/catalog frame), it recovers the
// rotation between the two frames as a unit quaternion.
package attitude

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"

	"github.com/nks676/startracker/pkg/geometry"
	"github.com/nks676/startracker/pkg/matrix"
	"github.com/nks676/startracker/pkg/quaternion"
)

/*****************************************************************************************************************/

// Observation pairs a direction as measured in the camera/body frame with its catalog identity in
// the inertial frame. Weight is carried for future weighted-least-squares extensions but is
// unused by TRIAD, which only ever consumes the first two observations.
type Observation struct {
	Body     geometry.Vector3
	Inertial geometry.Vector3
	Weight   float64
}

/*****************************************************************************************************************/

// ErrColinearObservations is returned when the two leading observations' inertial (or body)
// directions are colinear, so the second triad axis (their cross product) cannot be normalized
// and the attitude is underdetermined.
var ErrColinearObservations = errors.New("attitude: leading observation pair is colinear")

/*****************************************************************************************************************/

const colinearNormTolerance = 1e-9

/*****************************************************************************************************************/

// Solve computes the attitude quaternion rotating the inertial frame into the body frame, using
// only the first two observations — exactly as TRIAD is defined. Additional observations beyond
// the first two are accepted (for callers that pass all matched triangle vertices) but ignored.
// Fewer than two observations under-determine TRIAD entirely, so Solve returns the identity
// quaternion rather than an error.
func Solve(obs []Observation) (quaternion.Quaternion, error) {
	if len(obs) < 2 {
		return quaternion.Identity(), nil
	}

	r1, r2 := obs[0].Inertial, obs[1].Inertial
	b1, b2 := obs[0].Body, obs[1].Body

	inertialCross := r1.Cross(r2)
	bodyCross := b1.Cross(b2)

	if inertialCross.Norm() <= colinearNormTolerance || bodyCross.Norm() <= colinearNormTolerance {
		return quaternion.Quaternion{}, ErrColinearObservations
	}

	// Inertial reference triad (V1, V2, V3):
	v1 := r1.Normalize()
	v2 := inertialCross.Normalize()
	v3 := v1.Cross(v2)

	// Body measurement triad (W1, W2, W3), built with identical logic so the frames align:
	w1 := b1.Normalize()
	w2 := bodyCross.Normalize()
	w3 := w1.Cross(w2)

	// Rotation matrix A = W * V^T, transforming inertial directions into the body frame. The 3x3
	// products are small enough to hand-roll, but they are routed through pkg/matrix
	// (gonum-backed) instead; TRIAD is that package's only caller.
	wMat, err := matrix.NewFromSlice([]float64{
		w1.X, w2.X, w3.X,
		w1.Y, w2.Y, w3.Y,
		w1.Z, w2.Z, w3.Z,
	}, 3, 3)
	if err != nil {
		return quaternion.Quaternion{}, fmt.Errorf("attitude: %w", err)
	}

	vMat, err := matrix.NewFromSlice([]float64{
		v1.X, v2.X, v3.X,
		v1.Y, v2.Y, v3.Y,
		v1.Z, v2.Z, v3.Z,
	}, 3, 3)
	if err != nil {
		return quaternion.Quaternion{}, fmt.Errorf("attitude: %w", err)
	}

	vMatT, err := vMat.Transpose()
	if err != nil {
		return quaternion.Quaternion{}, fmt.Errorf("attitude: %w", err)
	}

	aMat, err := wMat.Multiply(vMatT)
	if err != nil {
		return quaternion.Quaternion{}, fmt.Errorf("attitude: %w", err)
	}

	var a [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j], _ = aMat.At(i, j)
		}
	}

	return quaternion.FromRotationMatrix(a), nil
}

/*****************************************************************************************************************/

// BoresightDirection applies q to the camera's +Z boresight, returning the inertial-frame
// direction the optical axis points toward.
func BoresightDirection(q quaternion.Quaternion) geometry.Vector3 {
	qn := q.Normalize()

	// Rotate (0, 0, 1) by the inverse (conjugate, since q is unit) of q — A transforms inertial to
	// body, so the inertial boresight direction is A^T applied to the body-frame +Z axis, which is
	// equivalent to rotating +Z by the conjugate quaternion.
	x, y, z, w := qn.X, qn.Y, qn.Z, qn.W

	return geometry.Vector3{
		X: 2 * (x*z - w*y),
		Y: 2 * (y*z + w*x),
		Z: w*w - x*x - y*y + z*z,
	}
}

/*****************************************************************************************************************/
