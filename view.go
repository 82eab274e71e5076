package touchview

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// ViewTransform is the state a renderer reads every frame: a uniform scale
// followed by a translation, both in screen pixels.
type ViewTransform struct {
	Scale    float64
	Position Vec2
}

// Matrix returns the affine matrix mapping world to screen coordinates.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (v ViewTransform) Matrix() [6]float64 {
	return [6]float64{v.Scale, 0, 0, v.Scale, v.Position.X, v.Position.Y}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v ViewTransform) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(v.Matrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
// A zero scale maps through the identity.
func (v ViewTransform) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(v.Matrix()), sx, sy)
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}
