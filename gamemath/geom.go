package gamemath

// Box is an axis-aligned box described by its center and full extents.
type Box struct {
	Center  Vec3
	Extents Vec3
}

func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Extents.Scale(0.5))
}

func (b Box) Max() Vec3 {
	return b.Center.Add(b.Extents.Scale(0.5))
}

// Top returns the height of the box's upper surface.
func (b Box) Top() float64 {
	return b.Center.Y + b.Extents.Y/2
}

// Bounds is a box inflated by a margin on every axis, so that a point test
// against it stands in for a sphere test against the original box.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// ExpandedBounds inflates box by margin on each axis.
func ExpandedBounds(box Box, margin float64) Bounds {
	min, max := box.Min(), box.Max()
	return Bounds{
		MinX: min.X - margin, MaxX: max.X + margin,
		MinY: min.Y - margin, MaxY: max.Y + margin,
		MinZ: min.Z - margin, MaxZ: max.Z + margin,
	}
}

// ContainsOpen reports whether p lies strictly inside the bounds. Touching a
// face does not count, so a body can rest exactly on a surface.
func (b Bounds) ContainsOpen(p Vec3) bool {
	return p.X > b.MinX && p.X < b.MaxX &&
		p.Y > b.MinY && p.Y < b.MaxY &&
		p.Z > b.MinZ && p.Z < b.MaxZ
}

// SphereVsBox reports whether a sphere overlaps an axis-aligned box, using
// the closest-point test: clamp the sphere center into the box and compare
// the squared distance to the clamped point against radius squared.
func SphereVsBox(center Vec3, radius float64, box Box) bool {
	min, max := box.Min(), box.Max()
	closest := Vec3{
		X: clamp(center.X, min.X, max.X),
		Y: clamp(center.Y, min.Y, max.Y),
		Z: clamp(center.Z, min.Z, max.Z),
	}
	d := center.Sub(closest)
	return d.Dot(d) < radius*radius
}

const sweepEpsilon = 1e-8

// SweptSphereVsBox tests the segment from start to end against box inflated
// by radius, using the slab method. Fast projectiles cover many units per
// frame, so an end-of-frame point test alone would tunnel through thin
// geometry.
func SweptSphereVsBox(start, end Vec3, radius float64, box Box) bool {
	b := ExpandedBounds(box, radius)
	d := end.Sub(start)

	tMin, tMax := 0.0, 1.0
	axes := [3]struct{ origin, delta, lo, hi float64 }{
		{start.X, d.X, b.MinX, b.MaxX},
		{start.Y, d.Y, b.MinY, b.MaxY},
		{start.Z, d.Z, b.MinZ, b.MaxZ},
	}
	for _, a := range axes {
		if a.delta > -sweepEpsilon && a.delta < sweepEpsilon {
			// No motion along this axis: the slab is hit iff we start inside it.
			if a.origin < a.lo || a.origin > a.hi {
				return false
			}
			continue
		}
		t1 := (a.lo - a.origin) / a.delta
		t2 := (a.hi - a.origin) / a.delta
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}

// ResolveMovement applies a horizontal displacement to pos, sliding along
// walls: if the full move is blocked, each axis is attempted on its own, so
// a diagonal push into a wall still produces motion along it.
func ResolveMovement(pos, delta Vec3, blocked func(Vec3) bool) Vec3 {
	candidate := pos.Add(delta)
	if !blocked(candidate) {
		return candidate
	}
	xOnly := Vec3{X: pos.X + delta.X, Y: pos.Y, Z: pos.Z}
	if !blocked(xOnly) {
		return xOnly
	}
	zOnly := Vec3{X: pos.X, Y: pos.Y, Z: pos.Z + delta.Z}
	if !blocked(zOnly) {
		return zOnly
	}
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
