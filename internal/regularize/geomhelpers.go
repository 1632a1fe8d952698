package regularize

import "github.com/arl/meetpoint/internal/geom"

// rect is an axis-aligned 2D grid cell.
type rect struct {
	minX, maxX, minY, maxY float64
}

func (r rect) containsPoint(x, y float64) bool {
	return x >= r.minX && x <= r.maxX && y >= r.minY && y <= r.maxY
}

func (r rect) corners() [4][2]float64 {
	return [4][2]float64{
		{r.minX, r.minY}, {r.maxX, r.minY},
		{r.maxX, r.maxY}, {r.minX, r.maxY},
	}
}

// polygonIntersectsRect reports whether the 2D projection of corners
// overlaps r: either contains one of the rect's corners, is contained by
// it (one of the polygon's own corners lies in the rect), or one of the
// polygon's edges crosses one of the rect's edges.
func polygonIntersectsRect(corners []geom.Position, r rect) bool {
	rc := r.corners()

	for _, c := range rc {
		if pointInPolygon(corners, c[0], c[1]) {
			return true
		}
	}
	for _, c := range corners {
		if r.containsPoint(c.X, c.Y) {
			return true
		}
	}

	n := len(corners)
	for i := 0; i < n; i++ {
		a, b := corners[i], corners[(i+1)%n]
		for j := 0; j < 4; j++ {
			c, d := rc[j], rc[(j+1)%4]
			if segmentsIntersect(a.X, a.Y, b.X, b.Y, c[0], c[1], d[0], d[1]) {
				return true
			}
		}
	}
	return false
}

// pointInPolygon is the same even-odd ray-casting test as
// navmesh.NavArea.Contains, duplicated here (over raw corners rather than
// a NavArea) to avoid a regularize->navmesh->regularize-shaped dependency
// for what is a three-line geometric primitive.
func pointInPolygon(corners []geom.Position, x, y float64) bool {
	inside := false
	n := len(corners)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := corners[i].X, corners[i].Y
		xj, yj := corners[j].X, corners[j].Y
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func orientation(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func onSegment(ax, ay, bx, by, px, py float64) bool {
	return px >= min2(ax, bx) && px <= max2(ax, bx) &&
		py >= min2(ay, by) && py <= max2(ay, by)
}

// segmentsIntersect reports whether segment (p1,p2) crosses segment
// (p3,p4), including touching endpoints (the regularizer only needs a
// boolean overlap signal, not the intersection point).
func segmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	o1 := orientation(x1, y1, x2, y2, x3, y3)
	o2 := orientation(x1, y1, x2, y2, x4, y4)
	o3 := orientation(x3, y3, x4, y4, x1, y1)
	o4 := orientation(x3, y3, x4, y4, x2, y2)

	if ((o1 > 0) != (o2 > 0)) && ((o3 > 0) != (o4 > 0)) {
		return true
	}
	if o1 == 0 && onSegment(x1, y1, x2, y2, x3, y3) {
		return true
	}
	if o2 == 0 && onSegment(x1, y1, x2, y2, x4, y4) {
		return true
	}
	if o3 == 0 && onSegment(x3, y3, x4, y4, x1, y1) {
		return true
	}
	if o4 == 0 && onSegment(x3, y3, x4, y4, x2, y2) {
		return true
	}
	return false
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
