// Package system generates star systems and models them as orbital
// hierarchies.
package system

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"cosmos-server/internal/body"
	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/names"
	"cosmos-server/internal/planet"
	"cosmos-server/internal/random"
	"cosmos-server/internal/sector"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/star"
)

const (
	pairChance        = 0.3
	multiplicityRatio = 0.45
	// Hierarchies stay stable while each level is several times wider than
	// the one it contains.
	minSeparationGrowth = 3.0
	maxSeparationGrowth = 20.0
)

// member is a star or a sub-hierarchy waiting to be attached to a barycenter.
type member struct {
	id    int
	mass  float64
	reach float64
}

type placedStar struct {
	id    int
	name  string
	star  body.Star
	limit float64
}

// Generate builds the system with the given index in hex, which lies in
// subSector of g. The system's draws come from a stream keyed on the galaxy,
// the hex and the index, so the result does not depend on what else was
// generated before. The hex is marked explored on g.
func Generate(index int, coord spatial.SpaceCoordinates, hex sector.Hex, subSector sector.Division, g *galaxy.Galaxy, s settings.GenerationSettings) (*StarSystem, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if hex.Coordinates != coord || !subSector.Bounds.Contains(coord) {
		return nil, errors.Invariantf("hex %s and sub-sector %s do not contain %s", hex.Coordinates, subSector.Name, coord)
	}

	// The stream depends only on the galaxy this run generated, not on earlier
	// lookups, so the same hex always yields the same system.
	stream := random.Derive(g.Key, int64(g.HexLevel()+1), coord.X, coord.Y, coord.Z, int64(index))
	name := names.System(stream)
	age := g.Age * stream.Range(0.02, 1)
	density := (hex.Density + subSector.Density) / 2

	stars := make([]body.Star, starCount(stream, density, s.SystemMaxStars))
	for i := range stars {
		stars[i] = star.Generate(stream, star.Context{
			Age:         age,
			Metallicity: g.Metallicity,
			Density:     density,
			Companion:   i > 0,
		})
	}
	slices.SortStableFunc(stars, func(a, b body.Star) int {
		return cmp.Compare(b.Mass, a.Mass)
	})

	b := NewBuilder()
	placed, centerID, err := arrange(b, stream, name, stars)
	if err != nil {
		return nil, err
	}

	if s.SystemGeneratePlanets {
		for _, p := range placed {
			region := planet.Region{Outer: p.limit / 3}
			for _, orbit := range planet.GenerateOrbits(stream, p.star, p.name, region, g.Metallicity) {
				id := b.Add(orbit.Object)
				if err := b.Attach(id, p.id, orbit.Distance); err != nil {
					return nil, err
				}
			}
		}
	}

	system := b.Build(name, centerID, mainStar(placed))
	if err := Validate(system); err != nil {
		return nil, err
	}

	if err := g.MarkExplored(coord, galaxy.ExploredHex{SystemName: name, StarCount: len(stars)}); err != nil {
		return nil, err
	}
	return system, nil
}

// starCount favours single stars; dense regions raise the odds of
// multiples.
func starCount(stream *random.Stream, density float64, maxStars int) int {
	ratio := multiplicityRatio * (1 + 0.5*density)
	weights := make([]float64, maxStars)
	for n := range weights {
		weights[n] = math.Pow(ratio, float64(n))
	}
	return stream.Weighted(weights) + 1
}

// arrange groups stars, heaviest first, into components lettered A, B, C...
// A component is a single star or a close pair sharing a barycenter. The
// components are then nested: each new barycenter joins everything placed so
// far with the next component, at a separation several times the previous.
func arrange(b *Builder, stream *random.Stream, name string, stars []body.Star) ([]placedStar, int, error) {
	if len(stars) == 1 {
		id := b.Add(stars[0])
		placed := []placedStar{{id: id, name: name, star: stars[0]}}
		rename(b, placed)
		return placed, id, nil
	}

	var placed []placedStar
	var members []member
	letter := 'A'
	for i := 0; i < len(stars); letter++ {
		short := fmt.Sprintf("%s %c", name, letter)
		if i+1 < len(stars) && stream.Chance(pairChance) {
			pair, err := attachPair(b, stream, short, stars[i], stars[i+1])
			if err != nil {
				return nil, 0, err
			}
			members = append(members, pair.member)
			placed = append(placed, pair.stars...)
			i += 2
			continue
		}

		id := b.Add(stars[i])
		members = append(members, member{id: id, mass: stars[i].Mass})
		placed = append(placed, placedStar{id: id, name: short, star: stars[i]})
		i++
	}

	inner := members[0]
	separation := 0.0
	for _, next := range members[1:] {
		if separation == 0 {
			separation = stream.LogRange(0.1, 50)
		} else {
			separation *= stream.Range(minSeparationGrowth, maxSeparationGrowth)
		}
		separation = math.Max(separation, minSeparationGrowth*math.Max(inner.reach, next.reach))

		joined, err := attachBarycenter(b, inner, next, separation)
		if err != nil {
			return nil, 0, err
		}
		for i := range placed {
			if placed[i].limit == 0 && (placed[i].id == inner.id || placed[i].id == next.id) {
				placed[i].limit = separation
			}
		}
		inner = joined
	}

	rename(b, placed)
	return placed, inner.id, nil
}

type pair struct {
	member member
	stars  []placedStar
}

func attachPair(b *Builder, stream *random.Stream, short string, primary, secondary body.Star) (pair, error) {
	a := member{id: b.Add(primary), mass: primary.Mass}
	c := member{id: b.Add(secondary), mass: secondary.Mass}
	separation := stream.LogRange(0.0003, 0.5)

	joined, err := attachBarycenter(b, a, c, separation)
	if err != nil {
		return pair{}, err
	}
	return pair{
		member: joined,
		stars: []placedStar{
			{id: a.id, name: short + "a", star: primary, limit: separation},
			{id: c.id, name: short + "b", star: secondary, limit: separation},
		},
	}, nil
}

// attachBarycenter puts a and c on opposite sides of a new Void point, each
// at its barycentric share of separation.
func attachBarycenter(b *Builder, a, c member, separation float64) (member, error) {
	total := a.mass + c.mass
	da := separation * c.mass / total
	dc := separation * a.mass / total
	if da == dc {
		// Siblings need distinct distances.
		da *= 0.999
		dc *= 1.001
	}

	id := b.Add(body.Void{})
	if err := b.Attach(a.id, id, da); err != nil {
		return member{}, err
	}
	if err := b.Attach(c.id, id, dc); err != nil {
		return member{}, err
	}
	return member{id: id, mass: total, reach: separation}, nil
}

func rename(b *Builder, placed []placedStar) {
	for i := range placed {
		placed[i].star.Name = star.Designation(placed[i].name, placed[i].star)
		b.Replace(placed[i].id, placed[i].star)
	}
}

// mainStar is the most luminous star, the lowest id winning ties.
func mainStar(placed []placedStar) int {
	best := placed[0]
	for _, p := range placed[1:] {
		if p.star.Luminosity > best.star.Luminosity || (p.star.Luminosity == best.star.Luminosity && p.id < best.id) {
			best = p
		}
	}
	return best.id
}
