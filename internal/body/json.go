package body

import (
	"encoding/json"
	"fmt"
)

// MarshalObject encodes Void as "Void" and every other variant as a
// single-key object named after the variant, e.g. {"Star": {...}}.
func MarshalObject(o Object) ([]byte, error) {
	switch v := o.(type) {
	case Void:
		return json.Marshal(KindVoid)
	case Star:
		return json.Marshal(map[Kind]Star{KindStar: v})
	case Planet:
		return json.Marshal(map[Kind]Planet{KindPlanet: v})
	case AsteroidBelt:
		return json.Marshal(map[Kind]AsteroidBelt{KindAsteroidBelt: v})
	case nil:
		return nil, fmt.Errorf("body: nil astronomical object")
	default:
		panic(unknown(o))
	}
}

func UnmarshalObject(data []byte) (Object, error) {
	var bare Kind
	if err := json.Unmarshal(data, &bare); err == nil {
		if bare != KindVoid {
			return nil, fmt.Errorf("body: %q is not a unit variant", bare)
		}
		return Void{}, nil
	}

	var tagged map[Kind]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("body: invalid astronomical object: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("body: astronomical object must have exactly one variant, got %d", len(tagged))
	}

	for kind, raw := range tagged {
		switch kind {
		case KindStar:
			var star Star
			err := json.Unmarshal(raw, &star)
			return star, err
		case KindPlanet:
			var planet Planet
			err := json.Unmarshal(raw, &planet)
			return planet, err
		case KindAsteroidBelt:
			var belt AsteroidBelt
			err := json.Unmarshal(raw, &belt)
			return belt, err
		default:
			return nil, fmt.Errorf("body: unknown variant %q", kind)
		}
	}
	return nil, fmt.Errorf("body: empty astronomical object")
}
