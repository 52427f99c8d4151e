package system

import "cosmos-server/internal/body"

func orbiting(id, primary int, distance float64, object body.Object, satellites ...int) OrbitalPoint {
	if satellites == nil {
		satellites = []int{}
	}
	return OrbitalPoint{
		ID:                  id,
		PrimaryBodyID:       &primary,
		DistanceFromPrimary: &distance,
		SatelliteIDs:        satellites,
		Object:              object,
	}
}

func mainSequence(name string, mass, luminosity, radius float64, temperature uint32, class body.SpectralClass, decile uint8) body.Star {
	return body.Star{
		Name:            name,
		Mass:            mass,
		Luminosity:      luminosity,
		Radius:          radius,
		Age:             4.6,
		Temperature:     temperature,
		SpectralType:    body.Spectral(class, decile),
		LuminosityClass: body.LuminosityV,
	}
}

// Fixture returns Octupla, a fixed eight-star system clients use to exercise
// their rendering without running a generation.
func Fixture() *StarSystem {
	whiteDwarf := body.Star{
		Name:            "Octupla Fa (DB VII)",
		Mass:            0.6113024,
		Luminosity:      0.00029274347,
		Radius:          0.009897539,
		Age:             4.6,
		Temperature:     7589,
		SpectralType:    body.Spectral(body.ClassDB, 0),
		LuminosityClass: body.LuminosityVII,
	}

	return &StarSystem{
		Name:       "Octupla",
		CenterID:   16,
		MainStarID: 0,
		AllObjects: []OrbitalPoint{
			orbiting(1, 3, 0.03745821439248134, mainSequence("Octupla Ba (M7 V)", 0.114816464, 0.0017136049, 0.177, 2791, body.ClassM, 7)),
			orbiting(2, 3, 0.04973226716467603, mainSequence("Octupla Bb (M9 V)", 0.08647946, 0.0008467538, 0.141, 2622, body.ClassM, 9)),
			orbiting(0, 4, 0.05513547187959574, mainSequence("Octupla A (G0 V)", 1.234416, 4.4682164, 2.0020883, 5931, body.ClassG, 0)),
			orbiting(3, 4, 0.3381097176403421, body.Void{}, 1, 2),
			orbiting(4, 6, 5.197310496129988, body.Void{}, 0, 3),
			orbiting(5, 6, 20.900606604977213, mainSequence("Octupla C (K9 V)", 0.35701552, 0.03640418, 0.439, 3805, body.ClassK, 9)),
			orbiting(6, 8, 19.766755970567417, body.Void{}, 4, 5),
			orbiting(7, 8, 266.1746531138536, mainSequence("Octupla D (M6 V)", 0.13313216, 0.0025596572, 0.19899999, 2910, body.ClassM, 6)),
			orbiting(8, 10, 309.734801744982, body.Void{}, 6, 7),
			orbiting(9, 10, 2765.0653613474487, mainSequence("Octupla E (M4 V)", 0.21572936, 0.010239862, 0.293, 3392, body.ClassM, 4)),
			orbiting(12, 13, 0.0003740043956514335, whiteDwarf),
			orbiting(11, 13, 0.002122341315415619, mainSequence("Octupla Fb (M7 V)", 0.10772526, 0.0014501228, 0.168, 2748, body.ClassM, 7)),
			orbiting(10, 14, 8398.912409629105, body.Void{}, 8, 9),
			orbiting(13, 14, 25015.75579368719, body.Void{}, 12, 11),
			orbiting(14, 16, 62671.17324970373, body.Void{}, 10, 13),
			orbiting(15, 16, 299130.7939912374, mainSequence("Octupla G (K4 V)", 0.5993305, 0.12051362, 0.5913681, 4421, body.ClassK, 4)),
			{ID: 16, SatelliteIDs: []int{14, 15}, Object: body.Void{}},
		},
	}
}
