package body

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Star quantities are solar units, except Age (billions of years) and
// Temperature (Kelvin).
type Star struct {
	Name            string          `json:"name"`
	Mass            float64         `json:"mass"`
	Luminosity      float64         `json:"luminosity"`
	Radius          float64         `json:"radius"`
	Age             float64         `json:"age"`
	Temperature     uint32          `json:"temperature"`
	SpectralType    SpectralType    `json:"spectral_type"`
	LuminosityClass LuminosityClass `json:"luminosity_class"`
}

type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
	ClassL SpectralClass = "L"
	ClassT SpectralClass = "T"
	ClassY SpectralClass = "Y"

	// White dwarfs carry no decile.
	ClassDA SpectralClass = "DA"
	ClassDB SpectralClass = "DB"
	ClassDC SpectralClass = "DC"
	ClassDO SpectralClass = "DO"
	ClassDQ SpectralClass = "DQ"
	ClassDZ SpectralClass = "DZ"
)

var decileClasses = map[SpectralClass]bool{
	ClassO: true, ClassB: true, ClassA: true, ClassF: true, ClassG: true,
	ClassK: true, ClassM: true, ClassL: true, ClassT: true, ClassY: true,
}

var bareClasses = map[SpectralClass]bool{
	ClassDA: true, ClassDB: true, ClassDC: true, ClassDO: true, ClassDQ: true, ClassDZ: true,
}

// HasDecile reports whether the class is followed by a 0-9 subclass.
func (c SpectralClass) HasDecile() bool {
	return decileClasses[c]
}

// SpectralType is a class letter plus, for letter classes, a decile.
// It encodes as {"G": 2} or, for white dwarfs, as "DA".
type SpectralType struct {
	Class  SpectralClass
	Decile uint8
}

func Spectral(class SpectralClass, decile uint8) SpectralType {
	return SpectralType{Class: class, Decile: decile}
}

func (t SpectralType) String() string {
	if t.Class.HasDecile() {
		return string(t.Class) + strconv.Itoa(int(t.Decile))
	}
	return string(t.Class)
}

func (t SpectralType) MarshalJSON() ([]byte, error) {
	switch {
	case t.Class.HasDecile():
		if t.Decile > 9 {
			return nil, fmt.Errorf("spectral decile %d out of range", t.Decile)
		}
		return json.Marshal(map[SpectralClass]uint8{t.Class: t.Decile})
	case bareClasses[t.Class]:
		return json.Marshal(t.Class)
	default:
		return nil, fmt.Errorf("unknown spectral class %q", t.Class)
	}
}

func (t *SpectralType) UnmarshalJSON(data []byte) error {
	var bare SpectralClass
	if err := json.Unmarshal(data, &bare); err == nil {
		if !bareClasses[bare] {
			return fmt.Errorf("spectral class %q needs a decile", bare)
		}
		*t = SpectralType{Class: bare}
		return nil
	}

	var tagged map[SpectralClass]uint8
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid spectral type: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("spectral type must have exactly one class, got %d", len(tagged))
	}
	for class, decile := range tagged {
		if !class.HasDecile() {
			return fmt.Errorf("spectral class %q does not take a decile", class)
		}
		if decile > 9 {
			return fmt.Errorf("spectral decile %d out of range", decile)
		}
		*t = SpectralType{Class: class, Decile: decile}
	}
	return nil
}

// LuminosityClass is the Yerkes class, VII standing for white dwarfs.
type LuminosityClass string

const (
	LuminosityIa  LuminosityClass = "Ia"
	LuminosityIb  LuminosityClass = "Ib"
	LuminosityII  LuminosityClass = "II"
	LuminosityIII LuminosityClass = "III"
	LuminosityIV  LuminosityClass = "IV"
	LuminosityV   LuminosityClass = "V"
	LuminosityVI  LuminosityClass = "VI"
	LuminosityVII LuminosityClass = "VII"
)

func (c LuminosityClass) Valid() bool {
	switch c {
	case LuminosityIa, LuminosityIb, LuminosityII, LuminosityIII,
		LuminosityIV, LuminosityV, LuminosityVI, LuminosityVII:
		return true
	}
	return false
}

func (c *LuminosityClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !LuminosityClass(s).Valid() {
		return fmt.Errorf("unknown luminosity class %q", s)
	}
	*c = LuminosityClass(s)
	return nil
}
