package gamemath

// groundEpsilon is the tolerance band around a platform's top surface for
// rest detection, symmetric above and below.
const groundEpsilon = 0.1

// Collider answers point and ground queries for a body of a fixed radius
// against a set of static boxes. The box list never changes after world
// construction.
type Collider struct {
	Boxes  []Box
	Radius float64
}

// Blocked reports whether a body centered at p overlaps any box. Points
// exactly on an expanded face are not blocked, which lets the body rest on a
// surface.
func (c *Collider) Blocked(p Vec3) bool {
	for _, box := range c.Boxes {
		if ExpandedBounds(box, c.Radius).ContainsOpen(p) {
			return true
		}
	}
	return false
}

// GroundHeight returns the height the body's center should occupy when
// standing on the platform under p, if the body's feet are within the
// tolerance band of a top surface whose horizontal footprint contains p.
func (c *Collider) GroundHeight(p Vec3) (float64, bool) {
	feet := p.Y - c.Radius
	for _, box := range c.Boxes {
		b := ExpandedBounds(box, c.Radius)
		if p.X < b.MinX || p.X > b.MaxX || p.Z < b.MinZ || p.Z > b.MaxZ {
			continue
		}
		top := box.Top()
		if feet >= top-groundEpsilon && feet <= top+groundEpsilon {
			return top + c.Radius, true
		}
	}
	return 0, false
}
