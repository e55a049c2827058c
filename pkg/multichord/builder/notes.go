// Package builder assembles the ports of the multi-chord descriptor.
package builder

import "strings"

// NoteNames is the chromatic scale starting at C, indexed 0-11.
var NoteNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// Mod returns a modulo n in the range [0, n).
// Go's % truncates toward zero, so negative operands are shifted back into range.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// NoteName returns the note name for any integer, wrapping around the octave.
func NoteName(i int) string {
	return NoteNames[Mod(i, len(NoteNames))]
}

// NoteSymbol returns the symbol-safe form of a note name ("c#" -> "cs").
func NoteSymbol(i int) string {
	return strings.ReplaceAll(strings.ToLower(NoteName(i)), "#", "s")
}

// NoteLabel returns the display form of a note name ("c#" -> "C#").
func NoteLabel(i int) string {
	return strings.ToUpper(NoteName(i))
}
