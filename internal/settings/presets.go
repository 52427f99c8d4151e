package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cosmos-server/internal/shared/errors"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Presets maps a preset name to complete settings. Loaded once, then only read.
type Presets map[string]GenerationSettings

// BuiltinPresets is what a server without a presets file offers.
func BuiltinPresets() Presets {
	return Presets{ExampleSeed: Example()}
}

// LoadPresets reads a YAML (.yaml, .yml) or TOML (.toml) file shaped as
//
//	presets:
//	  milky-way:
//	    seed: milky-way
//	    galaxy_fixed_shape: barred_spiral
//
// Every preset starts from Default, so it only names the fields it changes.
// The built-in "default" preset is kept unless the file overrides it.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var presets Presets
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		presets, err = parseYAMLPresets(data)
	case ".toml":
		presets, err = parseTOMLPresets(data)
	default:
		return nil, fmt.Errorf("unsupported presets file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}

	merged := BuiltinPresets()
	for name, preset := range presets {
		if err := preset.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		merged[name] = preset
	}
	return merged, nil
}

func parseYAMLPresets(data []byte) (Presets, error) {
	var file struct {
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	presets := make(Presets, len(file.Presets))
	for name, node := range file.Presets {
		preset := Default()
		if err := node.Decode(&preset); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = preset
	}
	return presets, nil
}

func parseTOMLPresets(data []byte) (Presets, error) {
	var file struct {
		Presets map[string]toml.Primitive `toml:"presets"`
	}
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, err
	}

	presets := make(Presets, len(file.Presets))
	for name, primitive := range file.Presets {
		preset := Default()
		if err := meta.PrimitiveDecode(primitive, &preset); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = preset
	}
	return presets, nil
}

// Get returns a copy of the named preset.
func (p Presets) Get(name string) (GenerationSettings, error) {
	preset, ok := p[name]
	if !ok {
		return GenerationSettings{}, errors.NotFoundf("preset %q not found", name)
	}
	return preset, nil
}

func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
