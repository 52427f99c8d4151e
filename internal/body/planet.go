package body

type PlanetType string

const (
	PlanetTypeBarren      PlanetType = "barren"
	PlanetTypeTerrestrial PlanetType = "terrestrial"
	PlanetTypeGasGiant    PlanetType = "gas_giant"
	PlanetTypeIce         PlanetType = "ice"
	PlanetTypeVolcanic    PlanetType = "volcanic"
)

// Planet mass and radius are in Earth units, temperature in Kelvin.
type Planet struct {
	Name        string     `json:"name"`
	Type        PlanetType `json:"type"`
	Mass        float64    `json:"mass"`
	Radius      float64    `json:"radius"`
	Temperature uint32     `json:"temperature"`
	Habitable   bool       `json:"habitable"`
}

// AsteroidBelt width is in AU, mass in Earth masses.
type AsteroidBelt struct {
	Name  string  `json:"name"`
	Width float64 `json:"width"`
	Mass  float64 `json:"mass"`
}
