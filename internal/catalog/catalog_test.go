package catalog

import (
	"math"
	"testing"

	"github.com/litescript/ls-exoview/internal/astro"
)

func TestValue(t *testing.T) {
	if got := Value(nil, 7.5); got != 7.5 {
		t.Errorf("Value(nil) = %v, want fallback 7.5", got)
	}
	if got := Value(Float(0), 7.5); got != 0 {
		t.Errorf("Value(&0) = %v, want 0 (zero is valid data)", got)
	}
}

func TestComputeOrigins(t *testing.T) {
	systems := []StarSystem{
		{Hostname: "a", RADeg: 0, DecDeg: 0, DistancePc: 10},
		{Hostname: "b", RADeg: 0, DecDeg: 90, DistancePc: 4},
	}
	ComputeOrigins(systems)

	if math.Abs(systems[0].Origin.X-10) > 1e-9 {
		t.Errorf("origin of a = %+v, want X=10", systems[0].Origin)
	}
	if math.Abs(systems[1].Origin.Z-4) > 1e-9 {
		t.Errorf("origin of b = %+v, want Z=4", systems[1].Origin)
	}
}

func TestSortBodiesByPerihelion(t *testing.T) {
	bodies := []CelestialBody{
		{Name: "outer", SemiMajorAxisAU: Float(2.0)},
		// High eccentricity drops the closest approach below the
		// nominally inner planet.
		{Name: "eccentric", SemiMajorAxisAU: Float(1.5), Eccentricity: Float(0.9)},
		{Name: "inner", SemiMajorAxisAU: Float(0.5)},
		{Name: "moon", ParentName: "outer", SemiMajorAxisAU: Float(0.001)},
		{Name: "unknown"},
	}

	order := SortBodiesByPerihelion(bodies)

	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = bodies[idx].Name
	}
	want := []string{"eccentric", "inner", "outer", "unknown"}
	if len(names) != len(want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestDemoSystems(t *testing.T) {
	systems := DemoSystems()
	if len(systems) == 0 {
		t.Fatal("DemoSystems() is empty")
	}

	seen := make(map[string]bool)
	haveMoon := false
	for _, s := range systems {
		if seen[s.Hostname] {
			t.Errorf("duplicate hostname %q", s.Hostname)
		}
		seen[s.Hostname] = true

		if s.DistancePc <= 0 {
			t.Errorf("%s: non-positive distance %v", s.Hostname, s.DistancePc)
		}
		if s.Origin == (astro.Vec3{}) && s.DistancePc > 0.001 {
			t.Errorf("%s: origin not computed", s.Hostname)
		}

		for _, b := range s.Bodies {
			if b.Name == "" {
				t.Errorf("%s: body with empty name", s.Hostname)
			}
			if e := b.Eccentricity; e != nil && (*e < 0 || *e >= 1) {
				t.Errorf("%s/%s: eccentricity %v out of [0,1)", s.Hostname, b.Name, *e)
			}
			if b.IsMoon() {
				haveMoon = true
				found := false
				for _, p := range s.Bodies {
					if p.Name == b.ParentName {
						found = true
					}
				}
				if !found {
					t.Errorf("%s/%s: parent %q not in system", s.Hostname, b.Name, b.ParentName)
				}
			}
		}
	}
	if !haveMoon {
		t.Error("demo catalog should include at least one moon")
	}
}
