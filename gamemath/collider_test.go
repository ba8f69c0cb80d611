package gamemath

import "testing"

func testCollider() *Collider {
	return &Collider{
		Boxes: []Box{
			box(0, -0.5, 0, 40, 1, 40), // floor, top at 0
			box(5, 0.6, 5, 3, 1.2, 3),  // crate, top at 1.2
		},
		Radius: 0.4,
	}
}

func TestColliderBlocked(t *testing.T) {
	c := testCollider()

	if !c.Blocked(Vec3{X: 5, Y: 0.5, Z: 5}) {
		t.Error("point inside the crate's expanded bounds should block")
	}
	if c.Blocked(Vec3{X: 0, Y: 0.4, Z: 0}) {
		t.Error("resting exactly on the floor's expanded face must not block")
	}
	if c.Blocked(Vec3{X: 0, Y: 5, Z: 0}) {
		t.Error("free air should not block")
	}
}

func TestColliderGroundHeight(t *testing.T) {
	c := testCollider()

	// Exactly at rest height over the floor.
	h, ok := c.GroundHeight(Vec3{X: 0, Y: 0.4, Z: 0})
	if !ok || h != 0.4 {
		t.Fatalf("GroundHeight on floor = (%v, %v), want (0.4, true)", h, ok)
	}

	// Slightly above and below, inside the tolerance band.
	if _, ok := c.GroundHeight(Vec3{X: 0, Y: 0.45, Z: 0}); !ok {
		t.Error("feet just above the surface should still be grounded")
	}
	if _, ok := c.GroundHeight(Vec3{X: 0, Y: 0.35, Z: 0}); !ok {
		t.Error("feet just below the surface should still be grounded")
	}

	// Far above the surface.
	if _, ok := c.GroundHeight(Vec3{X: 0, Y: 2, Z: 0}); ok {
		t.Error("mid-air point must not be grounded")
	}

	// Over the crate at its rest height.
	h, ok = c.GroundHeight(Vec3{X: 5, Y: 1.6, Z: 5})
	if !ok || h != 1.6 {
		t.Errorf("GroundHeight on crate = (%v, %v), want (1.6, true)", h, ok)
	}
}
