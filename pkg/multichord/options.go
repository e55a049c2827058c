// Package multichord generates the LV2 descriptor of the MIDI Multi-Chord plugin.
package multichord

import "fmt"

// Format represents the serialization of the descriptor.
type Format string

const (
	// FormatTurtle emits the LV2 Turtle document read by plugin hosts.
	FormatTurtle Format = "ttl"
	// FormatJSON emits the descriptor model as JSON.
	FormatJSON Format = "json"
)

// Options configures rendering. None of the fields change descriptor content.
type Options struct {
	// Format specifies the output serialization (ttl, json).
	Format Format
	// Pretty indents JSON output. It has no effect on Turtle.
	Pretty bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Format: FormatTurtle,
	}
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTurtle, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %s (must be ttl or json)", ErrUnknownFormat, s)
	}
}
