package defender

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Landscape is a piecewise-linear ground profile. Points are strictly
// increasing in X; Y grows downwards like every other world coordinate.
type Landscape struct {
	Points []core.Vec2
}

// GenerateLandscape builds a ground profile across the whole world with
// control points every cfg.Spacing pixels, each between MinDepth and
// MaxDepth above the screen bottom.
func GenerateLandscape(rng *RNG, worldW, screenH float64, cfg config.LandscapeConfig) Landscape {
	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = 160
	}
	n := int(math.Ceil(worldW/spacing)) + 1
	pts := make([]core.Vec2, 0, n)
	for i := 0; i < n; i++ {
		x := math.Min(float64(i)*spacing, worldW)
		depth := rng.Range(cfg.MinDepth, cfg.MaxDepth)
		pts = append(pts, core.Vec2{X: x, Y: screenH - depth})
		if x >= worldW {
			break
		}
	}
	return Landscape{Points: pts}
}

// GroundYAt returns the interpolated ground height at x. Outside the
// covered range the nearest endpoint height is used. An empty landscape has
// no ground and reports +Inf.
func (l Landscape) GroundYAt(x float64) float64 {
	pts := l.Points
	if len(pts) == 0 {
		return math.Inf(1)
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}

	// binary search for the segment containing x
	lo, hi := 0, len(pts)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if pts[mid].X <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	a, b := pts[lo], pts[hi]
	t := (x - a.X) / (b.X - a.X)
	return a.Y + t*(b.Y-a.Y)
}

// RayIntersection returns the first point where the segment start->end meets
// the ground, and true. If start is already at or below the ground, start is
// returned. Without a hit it returns end and false.
func (l Landscape) RayIntersection(start, end core.Vec2) (core.Vec2, bool) {
	if len(l.Points) == 0 {
		return end, false
	}
	if start.Y >= l.GroundYAt(start.X) {
		return start, true
	}

	r := end.Sub(start)
	best := math.Inf(1)
	l.eachSegment(func(a, b core.Vec2) {
		if t, ok := segmentHit(start, r, a, b.Sub(a)); ok && t < best {
			best = t
		}
	})
	if math.IsInf(best, 1) {
		return end, false
	}
	return start.Add(r.Scale(best)), true
}

// BeamEndX returns where a horizontal beam fired from start in direction
// (sign) stops: the first ground contact or the world edge.
func (l Landscape) BeamEndX(start core.Vec2, direction, worldW float64) float64 {
	edge := worldW
	if direction < 0 {
		edge = 0
	}
	hit, _ := l.RayIntersection(start, core.Vec2{X: edge, Y: start.Y})
	return hit.X
}

// Shift moves the whole profile vertically by dy.
func (l *Landscape) Shift(dy float64) {
	for i := range l.Points {
		l.Points[i].Y += dy
	}
}

// eachSegment visits every polyline segment plus flat extensions past both
// ends, matching GroundYAt's endpoint clamping.
func (l Landscape) eachSegment(fn func(a, b core.Vec2)) {
	pts := l.Points
	const far = 1e9
	first, last := pts[0], pts[len(pts)-1]
	fn(core.Vec2{X: first.X - far, Y: first.Y}, first)
	for i := 0; i+1 < len(pts); i++ {
		fn(pts[i], pts[i+1])
	}
	fn(last, core.Vec2{X: last.X + far, Y: last.Y})
}

// segmentHit intersects p+t*r with q+u*s and returns t when both
// parameters lie in [0, 1]. Parallel segments never hit.
func segmentHit(p, r, q, s core.Vec2) (float64, bool) {
	cross := func(a, b core.Vec2) float64 { return a.X*b.Y - a.Y*b.X }

	rxs := cross(r, s)
	if math.Abs(rxs) < 1e-12 {
		return 0, false
	}
	qp := q.Sub(p)
	t := cross(qp, s) / rxs
	u := cross(qp, r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
