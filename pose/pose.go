// Package pose provides rigid-body transforms for addressing scene-graph
// nodes. A Pose is a rotation followed by a translation; the viewer consumes
// it as a 4x4 homogeneous matrix in column-major order.
package pose

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a rigid transform composed of a unit-quaternion rotation and a
// translation. The zero value is not valid; use Identity.
type Pose struct {
	Translation r3.Vec
	Rotation    quat.Number
}

// Identity returns the identity transform.
func Identity() Pose {
	return Pose{Rotation: quat.Number{Real: 1}}
}

// Translation returns a pure translation.
func Translation(x, y, z float64) Pose {
	return Pose{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    quat.Number{Real: 1},
	}
}

// FromParts builds a pose from a translation and a unit quaternion.
func FromParts(t r3.Vec, q quat.Number) Pose {
	return Pose{Translation: t, Rotation: q}
}

// RPY returns a pure rotation from roll, pitch, and yaw in radians,
// applied as Rz(yaw) * Ry(pitch) * Rx(roll).
func RPY(roll, pitch, yaw float64) Pose {
	return Pose{Rotation: QuaternionRPY(roll, pitch, yaw)}
}

// New builds a pose from a translation and roll/pitch/yaw angles in radians.
func New(x, y, z, roll, pitch, yaw float64) Pose {
	return Pose{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    QuaternionRPY(roll, pitch, yaw),
	}
}

// QuaternionRPY converts roll/pitch/yaw Euler angles to a unit quaternion.
func QuaternionRPY(roll, pitch, yaw float64) quat.Number {
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// Mul composes two poses: the returned pose applies o first, then p.
func (p Pose) Mul(o Pose) Pose {
	return Pose{
		Translation: r3.Add(p.Translation, p.Apply(o.Translation)),
		Rotation:    quat.Mul(p.Rotation, o.Rotation),
	}
}

// Apply rotates v by the pose's rotation. The translation is not applied.
func (p Pose) Apply(v r3.Vec) r3.Vec {
	return r3.Rotation(p.Rotation).Rotate(v)
}

// Transform applies the full transform (rotation then translation) to v.
func (p Pose) Transform(v r3.Vec) r3.Vec {
	return r3.Add(p.Apply(v), p.Translation)
}

// Quaternion returns the rotation in the [x, y, z, w] order the viewer's
// quaternion property expects.
func (p Pose) Quaternion() [4]float64 {
	q := p.Rotation
	return [4]float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// Matrix returns the homogeneous transform as 16 column-major floats.
func (p Pose) Matrix() [16]float64 {
	q := p.Rotation
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	t := p.Translation
	return [16]float64{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0,
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0,
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0,
		t.X, t.Y, t.Z, 1,
	}
}
