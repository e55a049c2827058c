package builder

import (
	"fmt"

	"github.com/ukaji3/multichord-go/pkg/multichord/models"
)

// Descriptor layout. These are fixed at build time.
const (
	// Groups is the number of control groups, one per chromatic note.
	Groups = 12
	// Voices is the number of chord voices per group.
	Voices = 4

	// OffsetBase is the index of the first pitch-offset port.
	OffsetBase = 2
	// VelocityBase is the index of the first velocity-scaling port.
	VelocityBase = OffsetBase + Groups*Voices

	OffsetMin     = -12
	OffsetMax     = 12
	OffsetDefault = 0

	VelocityMin     = 0.5
	VelocityMax     = 2.0
	VelocityDefault = 1.0
)

// PortCount is the total number of ports in the descriptor.
const PortCount = VelocityBase + Groups*Voices

// LV2 vocabulary used by port declarations.
const (
	InputPort   = "lv2:InputPort"
	OutputPort  = "lv2:OutputPort"
	ControlPort = "lv2:ControlPort"
	AtomPort    = "atom:AtomPort"
	Sequence    = "atom:Sequence"
	MidiEvent   = "midi:MidiEvent"
	Integer     = "lv2:integer"
	Enumeration = "lv2:enumeration"
)

// OffsetIndex returns the port index of the offset control for group g, voice v.
func OffsetIndex(g, v int) int {
	return OffsetBase + g*Voices + v
}

// VelocityIndex returns the port index of the velocity control for group g, voice v.
func VelocityIndex(g, v int) int {
	return VelocityBase + g*Voices + v
}

// EventPorts returns the MIDI input and output ports at indices 0 and 1.
func EventPorts() []models.Port {
	return []models.Port{
		{
			Index:      0,
			Symbol:     "in",
			Name:       "In",
			Types:      []string{InputPort, AtomPort},
			BufferType: Sequence,
			Supports:   MidiEvent,
		},
		{
			Index:      1,
			Symbol:     "out",
			Name:       "Out",
			Types:      []string{OutputPort, AtomPort},
			BufferType: Sequence,
			Supports:   MidiEvent,
		},
	}
}

// OffsetPorts returns the pitch-offset controls in group-major, voice-minor order.
func OffsetPorts() []models.Port {
	ports := make([]models.Port, 0, Groups*Voices)
	for g := 0; g < Groups; g++ {
		for v := 0; v < Voices; v++ {
			ports = append(ports, models.Port{
				Index:       OffsetIndex(g, v),
				Symbol:      fmt.Sprintf("offset_%s%d", NoteSymbol(g), v+1),
				Name:        fmt.Sprintf("Offset %s:%d", NoteLabel(g), v+1),
				Types:       []string{InputPort, ControlPort},
				Minimum:     floatPtr(OffsetMin),
				Maximum:     floatPtr(OffsetMax),
				Default:     floatPtr(OffsetDefault),
				ScalePoints: OffsetScalePoints(g),
				Properties:  []string{Integer, Enumeration},
			})
		}
	}
	return ports
}

// OffsetScalePoints returns the 25 interval labels for group g.
// Negative keys are prefixed with "-", positive keys with "+", and key 0
// carries the bare note name of the group.
func OffsetScalePoints(g int) []models.ScalePoint {
	points := make([]models.ScalePoint, 0, OffsetMax-OffsetMin+1)
	for key := OffsetMin; key <= OffsetMax; key++ {
		var prefix string
		switch {
		case key < 0:
			prefix = "-"
		case key > 0:
			prefix = "+"
		}
		points = append(points, models.ScalePoint{
			Label: prefix + NoteLabel(g+key),
			Value: key,
		})
	}
	return points
}

// VelocityPorts returns the velocity-scaling controls in group-major, voice-minor order.
func VelocityPorts() []models.Port {
	ports := make([]models.Port, 0, Groups*Voices)
	for g := 0; g < Groups; g++ {
		for v := 0; v < Voices; v++ {
			ports = append(ports, models.Port{
				Index:   VelocityIndex(g, v),
				Symbol:  fmt.Sprintf("velocity_%s%d", NoteSymbol(g), v+1),
				Name:    fmt.Sprintf("Velocity %s:%d", NoteLabel(g), v+1),
				Types:   []string{InputPort, ControlPort},
				Minimum: floatPtr(VelocityMin),
				Maximum: floatPtr(VelocityMax),
				Default: floatPtr(VelocityDefault),
			})
		}
	}
	return ports
}

// Ports returns every port of the descriptor ordered by index.
func Ports() []models.Port {
	ports := make([]models.Port, 0, PortCount)
	ports = append(ports, EventPorts()...)
	ports = append(ports, OffsetPorts()...)
	ports = append(ports, VelocityPorts()...)
	return ports
}

func floatPtr(v float64) *float64 {
	return &v
}
