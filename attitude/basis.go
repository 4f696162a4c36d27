// Package attitude: closed index sets for axes and quaternion components.
package attitude

// Basis3D names the three Cartesian axes. The values double as storage
// offsets: X=0, Y=1, Z=2. The set is closed — no other axes exist — so
// APIs taking a Basis3D cannot be handed an out-of-range index.
type Basis3D int

const (
	// X is the first Cartesian axis (offset 0).
	X Basis3D = iota

	// Y is the second Cartesian axis (offset 1).
	Y

	// Z is the third Cartesian axis (offset 2).
	Z
)

// Offset maps the axis to its storage offset. Pure function, no lookup
// tables, no reflection.
func (b Basis3D) Offset() int { return int(b) }

// String implements fmt.Stringer.
func (b Basis3D) String() string {
	switch b {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "Basis3D(?)"
	}
}

// Component names the four quaternion components: the scalar part Q0 and
// the vector part QI, QJ, QK.
type Component int

const (
	// Q0 is the scalar component.
	Q0 Component = iota

	// QI is the first vector component.
	QI

	// QJ is the second vector component.
	QJ

	// QK is the third vector component.
	QK
)

// String implements fmt.Stringer.
func (c Component) String() string {
	switch c {
	case Q0:
		return "Q0"
	case QI:
		return "QI"
	case QJ:
		return "QJ"
	case QK:
		return "QK"
	default:
		return "Component(?)"
	}
}

// Unit returns a fresh unit vector aligned with the given axis.
// A new value is returned on every call; callers own it exclusively.
func Unit(axis Basis3D) *Vector3 {
	v := &Vector3{}
	v.Set(axis, 1)
	return v
}
