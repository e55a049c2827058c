// Package chord applies the multi-chord control values to MIDI note events.
//
// Each incoming note selects a group by its pitch class. Every voice of the
// group adds its offset to the note and scales its velocity. Voices that
// repeat the first voice's offset are treated as unused.
package chord

import (
	"github.com/ukaji3/multichord-go/pkg/multichord/builder"
	"github.com/ukaji3/multichord-go/pkg/multichord/models"
	"gitlab.com/gomidi/midi/v2"
)

// Map holds the control values of all offset and velocity ports.
type Map struct {
	Offsets    [builder.Groups][builder.Voices]int
	Velocities [builder.Groups][builder.Voices]float64
}

// NewMap returns a map where every voice doubles the played note.
func NewMap() *Map {
	m := &Map{}
	for g := 0; g < builder.Groups; g++ {
		for v := 0; v < builder.Voices; v++ {
			m.Offsets[g][v] = builder.OffsetDefault
			m.Velocities[g][v] = builder.VelocityDefault
		}
	}
	return m
}

// FromPlugin loads the default control values declared by the descriptor.
// Ports outside the offset and velocity ranges are ignored.
func FromPlugin(p *models.Plugin) *Map {
	m := NewMap()
	for _, port := range p.Ports {
		if port.Default != nil {
			m.Set(port.Index, *port.Default)
		}
	}
	return m
}

// Set assigns the value of the control port at index.
// It reports false when index is not an offset or velocity port.
func (m *Map) Set(index int, value float64) bool {
	switch {
	case index >= builder.OffsetBase && index < builder.VelocityBase:
		i := index - builder.OffsetBase
		m.Offsets[i/builder.Voices][i%builder.Voices] = int(value)
	case index >= builder.VelocityBase && index < builder.PortCount:
		i := index - builder.VelocityBase
		m.Velocities[i/builder.Voices][i%builder.Voices] = value
	default:
		return false
	}
	return true
}

// Apply maps one message to its chord.
// Note-on and note-off messages expand into one message per active voice.
// A note-on with velocity 0 is a release and keeps its note-on status.
// All other messages are returned unchanged.
func (m *Map) Apply(msg midi.Message) []midi.Message {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteOn(&ch, &key, &vel) && vel == 0:
		return m.expand(ch, key, vel, true, midi.NoteOn)
	case msg.GetNoteOn(&ch, &key, &vel):
		return m.expand(ch, key, vel, false, midi.NoteOn)
	case msg.GetNoteOff(&ch, &key, &vel):
		return m.expand(ch, key, vel, true, midi.NoteOffVelocity)
	default:
		return []midi.Message{msg}
	}
}

// expand builds the voices for one note. Note-ons that scale below velocity 1
// are dropped. Releases are always sent.
func (m *Map) expand(ch, key, vel uint8, release bool, build func(ch, key, vel uint8) midi.Message) []midi.Message {
	group := builder.Mod(int(key), builder.Groups)
	offsets := m.Offsets[group]

	var out []midi.Message
	for v := 0; v < builder.Voices; v++ {
		if v > 0 && offsets[v] == offsets[0] {
			continue
		}
		note := int(key) + offsets[v]
		if note < 0 || note > 127 {
			continue
		}
		velocity := int(m.Velocities[group][v] * float64(vel))
		if velocity > 127 {
			velocity = 127
		}
		if !release && velocity < 1 {
			continue
		}
		out = append(out, build(ch, uint8(note), uint8(velocity)))
	}
	return out
}
