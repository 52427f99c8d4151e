package galaxy

import (
	"math"

	"cosmos-server/internal/settings"
	"cosmos-server/internal/spatial"
)

const (
	discScale   = 0.35
	discHeight  = 0.25
	bulgeScale  = 0.02
	armCount    = 2
	armPitch    = 3
	barLength   = 0.3
	barWidth    = 0.06
	irregularID = -1
)

// density is the stellar density of the cell at (level, index), sampled at
// center and jittered by the cell's own stream. It stays within [0, 1].
func (g *Galaxy) density(level int, index, center spatial.SpaceCoordinates) float64 {
	jitter := g.derive(level, index).Range(0.85, 1.15)
	return clamp01(g.profile(center) * jitter)
}

// profile maps a hex to the density of the galaxy's shape, with x and y
// scaled to -1..1 across the disc and z across the thickness.
func (g *Galaxy) profile(c spatial.SpaceCoordinates) float64 {
	half := float64(g.SectorRadius) * float64(g.SectorSide)
	halfZ := float64(g.SectorThickness) * float64(g.SectorSide)
	x := (float64(c.X) + 0.5) / half
	y := (float64(c.Y) + 0.5) / half
	z := (float64(c.Z) + 0.5) / halfZ

	r := math.Hypot(x, y)
	bulge := math.Exp(-(r*r + z*z) / bulgeScale)
	disc := math.Exp(-r/discScale) * math.Exp(-math.Abs(z)/discHeight)

	var d float64
	switch g.Shape {
	case settings.ShapeSpiral:
		d = disc*(0.35+0.65*arms(x, y, r)) + bulge
	case settings.ShapeBarredSpiral:
		d = disc*(0.35+0.65*arms(x, y, r)) + bulge
		if math.Abs(y) < barWidth && math.Abs(x) < barLength {
			d += 0.6 * math.Exp(-math.Abs(z)/0.1)
		}
	case settings.ShapeElliptical:
		d = math.Exp(-(r*r + z*z) / 0.18)
	case settings.ShapeLenticular:
		d = disc + 1.5*bulge
	case settings.ShapeIrregular:
		// Clumps are per sector, so neighbouring hexes agree.
		clump := g.derive(irregularID, g.grid(spatial.SectorLevel).CellIndex(c)).Float64()
		d = (0.3 + 0.7*clump) * math.Exp(-(r*r+z*z)/0.5)
	default:
		panic("galaxy: unknown shape " + string(g.Shape))
	}

	return clamp01(d * (0.7 + 0.3*g.SizeFactor))
}

// arms peaks along logarithmic spirals.
func arms(x, y, r float64) float64 {
	theta := math.Atan2(y, x)
	phase := armCount * (theta - armPitch*math.Log(r+0.05))
	return (1 + math.Cos(phase)) / 2
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
