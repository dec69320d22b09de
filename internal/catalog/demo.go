package catalog

// DemoSystems returns a built-in catalog of well-known exoplanet systems so
// the viewer runs without external data. Values are approximate published
// elements; missing fields are left nil to exercise the fallback paths the
// real catalog feed produces.
func DemoSystems() []StarSystem {
	systems := []StarSystem{
		{
			Hostname:   "TRAPPIST-1",
			RADeg:      346.622, DecDeg: -5.041, DistancePc: 12.43,
			TemperatureK: Float(2566),
			RadiusSolar:  Float(0.119),
			MassSolar:    Float(0.0898),
			Bodies: []CelestialBody{
				{Name: "TRAPPIST-1 b", SemiMajorAxisAU: Float(0.01154), Eccentricity: Float(0.006), OrbitalPeriodDays: Float(1.511), RadiusEarth: Float(1.116), MassEarth: Float(1.374)},
				{Name: "TRAPPIST-1 c", SemiMajorAxisAU: Float(0.01580), Eccentricity: Float(0.007), OrbitalPeriodDays: Float(2.422), RadiusEarth: Float(1.097), MassEarth: Float(1.308)},
				{Name: "TRAPPIST-1 d", SemiMajorAxisAU: Float(0.02227), OrbitalPeriodDays: Float(4.049), RadiusEarth: Float(0.788), MassEarth: Float(0.388)},
				{Name: "TRAPPIST-1 e", SemiMajorAxisAU: Float(0.02925), OrbitalPeriodDays: Float(6.101), RadiusEarth: Float(0.920), MassEarth: Float(0.692)},
				{Name: "TRAPPIST-1 f", SemiMajorAxisAU: Float(0.03849), OrbitalPeriodDays: Float(9.207), RadiusEarth: Float(1.045), MassEarth: Float(1.039)},
				{Name: "TRAPPIST-1 g", SemiMajorAxisAU: Float(0.04683), OrbitalPeriodDays: Float(12.352), RadiusEarth: Float(1.129), MassEarth: Float(1.321)},
				{Name: "TRAPPIST-1 h", SemiMajorAxisAU: Float(0.06189), OrbitalPeriodDays: Float(18.773), RadiusEarth: Float(0.755), MassEarth: Float(0.326)},
			},
		},
		{
			Hostname:   "Kepler-90",
			RADeg:      284.433, DecDeg: 49.305, DistancePc: 855,
			TemperatureK: Float(6080),
			RadiusSolar:  Float(1.2),
			MassSolar:    Float(1.2),
			Bodies: []CelestialBody{
				{Name: "Kepler-90 b", SemiMajorAxisAU: Float(0.074), OrbitalPeriodDays: Float(7.008), RadiusEarth: Float(1.31)},
				{Name: "Kepler-90 c", SemiMajorAxisAU: Float(0.089), OrbitalPeriodDays: Float(8.719), RadiusEarth: Float(1.18)},
				{Name: "Kepler-90 i", SemiMajorAxisAU: Float(0.107), OrbitalPeriodDays: Float(14.449), RadiusEarth: Float(1.32)},
				{Name: "Kepler-90 d", SemiMajorAxisAU: Float(0.32), OrbitalPeriodDays: Float(59.737), RadiusEarth: Float(2.87)},
				{Name: "Kepler-90 e", SemiMajorAxisAU: Float(0.42), OrbitalPeriodDays: Float(91.939), RadiusEarth: Float(2.66)},
				{Name: "Kepler-90 f", SemiMajorAxisAU: Float(0.48), OrbitalPeriodDays: Float(124.914), RadiusEarth: Float(2.88)},
				{Name: "Kepler-90 g", SemiMajorAxisAU: Float(0.71), Eccentricity: Float(0.049), OrbitalPeriodDays: Float(210.607), RadiusEarth: Float(8.13)},
				{Name: "Kepler-90 h", SemiMajorAxisAU: Float(1.01), Eccentricity: Float(0.011), OrbitalPeriodDays: Float(331.601), RadiusEarth: Float(11.32)},
			},
		},
		{
			Hostname:   "Proxima Centauri",
			RADeg:      217.393, DecDeg: -62.676, DistancePc: 1.30,
			TemperatureK:       Float(3042),
			RadiusSolar:        Float(0.154),
			MassSolar:          Float(0.122),
			RotationPeriodDays: Float(82.6),
			Bodies: []CelestialBody{
				{Name: "Proxima Cen b", SemiMajorAxisAU: Float(0.04856), Eccentricity: Float(0.02), OrbitalPeriodDays: Float(11.184), MassEarth: Float(1.07)},
				{Name: "Proxima Cen d", SemiMajorAxisAU: Float(0.02885), Eccentricity: Float(0.04), OrbitalPeriodDays: Float(5.122), MassEarth: Float(0.26)},
			},
		},
		{
			Hostname:   "55 Cnc",
			RADeg:      133.149, DecDeg: 28.331, DistancePc: 12.58,
			TemperatureK: Float(5172),
			RadiusSolar:  Float(0.943),
			MassSolar:    Float(0.905),
			Bodies: []CelestialBody{
				{Name: "55 Cnc e", SemiMajorAxisAU: Float(0.01544), Eccentricity: Float(0.05), OrbitalPeriodDays: Float(0.737), RadiusEarth: Float(1.875), MassEarth: Float(7.99)},
				{Name: "55 Cnc b", SemiMajorAxisAU: Float(0.1134), Eccentricity: Float(0.0), OrbitalPeriodDays: Float(14.652), MassEarth: Float(263.9)},
				{Name: "55 Cnc c", SemiMajorAxisAU: Float(0.2373), Eccentricity: Float(0.03), OrbitalPeriodDays: Float(44.398), MassEarth: Float(54.47)},
				{Name: "55 Cnc f", SemiMajorAxisAU: Float(0.7708), Eccentricity: Float(0.08), OrbitalPeriodDays: Float(259.88), MassEarth: Float(44.81)},
				{Name: "55 Cnc d", SemiMajorAxisAU: Float(5.957), Eccentricity: Float(0.13), OrbitalPeriodDays: Float(5574.2), MassEarth: Float(1232.5)},
			},
		},
		{
			// The home system, included as the two-level orbit reference:
			// Luna composes its motion on top of Earth's.
			Hostname:   "Sol",
			RADeg:      0, DecDeg: 0, DistancePc: 0.00001,
			TemperatureK:       Float(5772),
			RadiusSolar:        Float(1.0),
			MassSolar:          Float(1.0),
			RotationPeriodDays: Float(25.38),
			Bodies: []CelestialBody{
				{Name: "Mercury", SemiMajorAxisAU: Float(0.387), Eccentricity: Float(0.2056), OrbitalPeriodDays: Float(87.97), RadiusEarth: Float(0.383), MassEarth: Float(0.055)},
				{Name: "Venus", SemiMajorAxisAU: Float(0.723), Eccentricity: Float(0.0068), OrbitalPeriodDays: Float(224.70), RadiusEarth: Float(0.949), MassEarth: Float(0.815)},
				{Name: "Earth", SemiMajorAxisAU: Float(1.0), Eccentricity: Float(0.0167), OrbitalPeriodDays: Float(365.25), RadiusEarth: Float(1.0), MassEarth: Float(1.0)},
				{Name: "Luna", ParentName: "Earth", SemiMajorAxisAU: Float(0.00257), Eccentricity: Float(0.0549), OrbitalPeriodDays: Float(27.32), RadiusEarth: Float(0.2727), MassEarth: Float(0.0123)},
				{Name: "Mars", SemiMajorAxisAU: Float(1.524), Eccentricity: Float(0.0934), OrbitalPeriodDays: Float(686.98), RadiusEarth: Float(0.532), MassEarth: Float(0.107)},
				{Name: "Jupiter", SemiMajorAxisAU: Float(5.203), Eccentricity: Float(0.0484), OrbitalPeriodDays: Float(4332.6), RadiusEarth: Float(11.21), MassEarth: Float(317.8)},
				{Name: "Saturn", SemiMajorAxisAU: Float(9.537), Eccentricity: Float(0.0542), OrbitalPeriodDays: Float(10759.2), RadiusEarth: Float(9.45), MassEarth: Float(95.2)},
			},
		},
	}

	ComputeOrigins(systems)
	return systems
}
