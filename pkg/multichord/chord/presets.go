package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/multichord-go/pkg/multichord/builder"
)

// ErrUnknownPreset indicates a preset name that is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names.
const (
	PresetDefault = "default"
	PresetMajor   = "major"
	PresetMinor   = "minor"
)

// triads maps a preset to the offsets of voices 1-3. Voice 4 stays at the root.
var triads = map[string][3]int{
	PresetMajor: {0, 4, 7},
	PresetMinor: {0, 3, 7},
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := []string{PresetDefault}
	for name := range triads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPreset returns the map for the named preset.
// Every preset starts from the defaults declared by the descriptor.
// Triad presets apply the same chord shape to every group.
func LoadPreset(name string) (*Map, error) {
	m := FromPlugin(builder.Plugin())
	if name == PresetDefault {
		return m, nil
	}

	triad, ok := triads[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	for g := range m.Offsets {
		for v, offset := range triad {
			m.Offsets[g][v] = offset
		}
	}
	return m, nil
}
