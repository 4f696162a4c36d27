// Package attitude_test contains unit tests for the Basis3D and Component
// closed index sets.
package attitude_test

import (
	"testing"

	"github.com/katalvlaran/attmath/attitude"
	"github.com/stretchr/testify/require"
)

// TestBasis3DOffsets pins the axis→offset mapping X=0, Y=1, Z=2.
func TestBasis3DOffsets(t *testing.T) {
	require.Equal(t, 0, attitude.X.Offset())
	require.Equal(t, 1, attitude.Y.Offset())
	require.Equal(t, 2, attitude.Z.Offset())
}

// TestBasis3DString verifies the Stringer output.
func TestBasis3DString(t *testing.T) {
	require.Equal(t, "X", attitude.X.String())
	require.Equal(t, "Y", attitude.Y.String())
	require.Equal(t, "Z", attitude.Z.String())
}

// TestComponentString verifies the quaternion component names.
func TestComponentString(t *testing.T) {
	require.Equal(t, "Q0", attitude.Q0.String())
	require.Equal(t, "QI", attitude.QI.String())
	require.Equal(t, "QJ", attitude.QJ.String())
	require.Equal(t, "QK", attitude.QK.String())
}

// TestUnitVectors verifies Unit returns fresh, exclusively owned values.
func TestUnitVectors(t *testing.T) {
	for _, axis := range axes {
		u := attitude.Unit(axis)
		require.Equal(t, 1.0, u.Get(axis)) // one on the named axis
		require.Equal(t, 1.0, u.Norm())    // unit length

		// mutating the returned vector must not affect later calls
		u.Set(axis, 99)
		fresh := attitude.Unit(axis)
		require.Equal(t, 1.0, fresh.Get(axis))
	}
}
