// Package attitude: the 12-coefficient affine export — the single
// contract this kernel has with host transform systems.
package attitude

// Affine packs a 3×3 rotation block and a translation into the row-major
// 12-coefficient layout host 3D transform systems consume:
//
//	(m00 m01 m02 tx  m10 m11 m12 ty  m20 m21 m22 tz)
//
// Convention boundary: hosts read the tuple as a DIRECT (active)
// rotation. The kernel computes passive (frame) transformations, so a
// matrix intended as an object rotation must be transposed on export —
// that is what NewRotationAffine does. Getting this backwards is the
// classic sign/orientation bug; the duality is pinned in affine_test.go.
type Affine [12]float64

// NewFrameAffine exports the rotation coefficients untransposed, for
// callers that hand the host a frame change rather than an object
// rotation.
func NewFrameAffine(rot *Matrix3x3, trans *Vector3) Affine {
	return Affine{
		rot.m[0], rot.m[1], rot.m[2], trans.v[0],
		rot.m[3], rot.m[4], rot.m[5], trans.v[1],
		rot.m[6], rot.m[7], rot.m[8], trans.v[2],
	}
}

// NewRotationAffine exports the passive matrix transposed, so the host
// receives the active rotation: applying the exported block to a vector
// moves it the way Rotate does.
func NewRotationAffine(rot *Matrix3x3, trans *Vector3) Affine {
	return Affine{
		rot.m[0], rot.m[3], rot.m[6], trans.v[0],
		rot.m[1], rot.m[4], rot.m[7], trans.v[1],
		rot.m[2], rot.m[5], rot.m[8], trans.v[2],
	}
}

// Rotation returns the 3×3 block of the tuple as a fresh Matrix3x3.
func (a Affine) Rotation() *Matrix3x3 {
	return &Matrix3x3{m: [9]float64{
		a[0], a[1], a[2],
		a[4], a[5], a[6],
		a[8], a[9], a[10],
	}}
}

// Translation returns the (tx, ty, tz) column as a fresh Vector3.
func (a Affine) Translation() *Vector3 {
	return &Vector3{v: [3]float64{a[3], a[7], a[11]}}
}
