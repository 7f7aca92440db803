package pose

import "math"

// Point is a 2D position in the pixel space of the upstream keypoint detector.
type Point struct {
	X float64
	Y float64
}

// Angle returns the angle ABC in degrees at vertex b, between the rays b->a
// and b->c. Returns 0.0 when either ray has zero length; callers treat that
// as "angle unknown", not as a measured zero.
func Angle(a, b, c Point) float64 {
	bax, bay := a.X-b.X, a.Y-b.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y

	magBA := math.Hypot(bax, bay)
	magBC := math.Hypot(bcx, bcy)
	if magBA == 0 || magBC == 0 {
		return 0.0
	}

	cosv := (bax*bcx + bay*bcy) / (magBA * magBC)
	// Clamp against floating-point drift before acos.
	cosv = math.Max(-1.0, math.Min(1.0, cosv))
	return math.Acos(cosv) * 180 / math.Pi
}

// NormDist returns the Euclidean length of (dx, dy) divided by scale.
// The second return is false when scale is zero, i.e. the distance is
// undefined for this frame.
func NormDist(dx, dy, scale float64) (float64, bool) {
	if scale == 0 {
		return 0, false
	}
	return math.Hypot(dx, dy) / scale, true
}
