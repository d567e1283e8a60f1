package pinchpad

import "math"

// Affine is a 2x3 affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//
// applied to a point as x' = a*x + c*y + tx, y' = b*x + d*y + ty.
// Affine is a value type; snapshotting is plain assignment.
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate returns a pure translation by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Scale returns a pure anisotropic scale by (v.X, v.Y) around the origin.
func Scale(v Vec2) Affine {
	return Affine{v.X, 0, 0, v.Y, 0, 0}
}

// TRS returns Translate(t) composed with a rotation by angle radians
// composed with Scale(s), as a single matrix: scale first, then rotate,
// then translate.
func TRS(t Vec2, angle float64, s Vec2) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos * s.X, sin * s.X, -sin * s.Y, cos * s.Y, t.X, t.Y}
}

// Compose sets dst = lhs * rhs (rhs applied first). All six coefficients of
// both inputs are read before dst is written, so dst may alias lhs or rhs.
func Compose(dst, lhs, rhs *Affine) {
	l, r := *lhs, *rhs
	dst[0] = l[0]*r[0] + l[2]*r[1]
	dst[1] = l[1]*r[0] + l[3]*r[1]
	dst[2] = l[0]*r[2] + l[2]*r[3]
	dst[3] = l[1]*r[2] + l[3]*r[3]
	dst[4] = l[0]*r[4] + l[2]*r[5] + l[4]
	dst[5] = l[1]*r[4] + l[3]*r[5] + l[5]
}

// FixAt returns Translate(p) * m * Translate(-p): m applied while keeping
// the point p visually stationary. This is what lets a pinch or wheel zoom
// pivot around the finger midpoint or cursor instead of the origin.
func FixAt(m Affine, p Vec2) Affine {
	return Affine{
		m[0], m[1], m[2], m[3],
		m[4] + p.X - m[0]*p.X - m[2]*p.Y,
		m[5] + p.Y - m[1]*p.X - m[3]*p.Y,
	}
}

// Apply transforms the point p by m.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// Invert returns the inverse of m, or the identity if m is singular
// (determinant within 1e-12 of zero).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Lerp returns the coefficient-wise interpolation between a (t=0) and b (t=1).
// Used by the animated view reset; adequate for blending toward the identity,
// not a general rotation interpolator.
func Lerp(a, b Affine, t float64) Affine {
	var out Affine
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
