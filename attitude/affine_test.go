// Package attitude_test contains unit tests for the 12-coefficient affine
// export — the convention boundary between the kernel's passive matrices
// and host transform systems that expect active rotations.
package attitude_test

import (
	"testing"

	"github.com/katalvlaran/attmath/attitude"
	"github.com/stretchr/testify/require"
)

// TestFrameAffineLayout pins the row-major (rotation row, translation)
// interleaving of the tuple.
func TestFrameAffineLayout(t *testing.T) {
	rot := attitude.NewMatrix3x3()
	rot.RotZ(deg(30))
	trans := attitude.NewVector3(10, 20, 30)

	a := attitude.NewFrameAffine(rot, trans)

	// rotation rows land at offsets 0..2, 4..6, 8..10
	require.Equal(t, rot.Get(attitude.X, attitude.X), a[0])
	require.Equal(t, rot.Get(attitude.X, attitude.Y), a[1])
	require.Equal(t, rot.Get(attitude.Y, attitude.X), a[4])
	require.Equal(t, rot.Get(attitude.Z, attitude.Z), a[10])

	// translation lands at offsets 3, 7, 11
	require.Equal(t, 10.0, a[3])
	require.Equal(t, 20.0, a[7])
	require.Equal(t, 30.0, a[11])
}

// TestRotationAffineIsTransposed verifies the active export transposes
// the passive block: the exported rotation applied to a vector moves it
// the way Rotate does, not the way Transform does.
func TestRotationAffineIsTransposed(t *testing.T) {
	rot := composedRotation() // passive frame transformation
	trans := &attitude.Vector3{}

	q := attitude.NewQuaternion()
	require.NoError(t, q.SetDCM(rot))

	active := attitude.NewRotationAffine(rot, trans).Rotation()

	v := attitude.NewVector3(3, 2, 1)
	requireVecInDelta(t, q.Rotated(v), active.Apply(v), tol) // moves like Rotate

	// while the frame export applies like Transform
	frame := attitude.NewFrameAffine(rot, trans).Rotation()
	requireVecInDelta(t, q.Transformed(v), frame.Apply(v), tol)
}

// TestAffineRoundTrip verifies Rotation/Translation recover the inputs.
func TestAffineRoundTrip(t *testing.T) {
	rot := composedRotation()
	trans := attitude.NewVector3(-1, 2.5, 7)

	a := attitude.NewFrameAffine(rot, trans)

	back := a.Rotation()
	for _, i := range axes {
		for _, j := range axes {
			require.Equal(t, rot.Get(i, j), back.Get(i, j)) // lossless block
		}
	}
	requireVecInDelta(t, trans, a.Translation(), 0) // lossless translation

	// the two exports agree on translation and differ by transpose on
	// the rotation block
	r := attitude.NewRotationAffine(rot, trans)
	requireVecInDelta(t, trans, r.Translation(), 0)
	tr := r.Rotation()
	tr.Transpose()
	for _, i := range axes {
		for _, j := range axes {
			require.Equal(t, rot.Get(i, j), tr.Get(i, j))
		}
	}
}
