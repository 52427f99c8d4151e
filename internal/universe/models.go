package universe

type Era string

const (
	EraEarlyStelliferous  Era = "early_stelliferous"
	EraMiddleStelliferous Era = "middle_stelliferous"
	EraLateStelliferous   Era = "late_stelliferous"
)

// Universe ages are in billions of years. Star formation rate and
// metallicity are relative to the present-day Milky Way and Sun.
type Universe struct {
	Seed              string  `json:"seed"`
	Age               float64 `json:"age"`
	Era               Era     `json:"era"`
	HubbleConstant    float64 `json:"hubble_constant"`
	StarFormationRate float64 `json:"star_formation_rate"`
	Metallicity       float64 `json:"metallicity"`
}

// EraAt returns the cosmological era of a universe of the given age.
func EraAt(age float64) Era {
	switch {
	case age < 5:
		return EraEarlyStelliferous
	case age < 50:
		return EraMiddleStelliferous
	default:
		return EraLateStelliferous
	}
}
