// Package output serializes the plugin descriptor.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/multichord-go/pkg/multichord/models"
)

// turtleWriter remembers the first write error and skips all later writes.
type turtleWriter struct {
	w   *bufio.Writer
	err error
}

func (tw *turtleWriter) line(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format+"\n", args...)
}

// ToTurtle writes the plugin as an LV2 Turtle document.
func ToTurtle(w io.Writer, p *models.Plugin) error {
	tw := &turtleWriter{w: bufio.NewWriter(w)}

	for _, ns := range p.Namespaces {
		tw.line("@prefix %-7s<%s> .", ns.Alias+":", ns.URI)
	}
	tw.line("")
	tw.line("<%s>", p.URI)
	tw.line("\ta %s ;", strings.Join(p.Types, " ,\n\t\t"))
	tw.line("\tdoap:name %s ;", turtleString(p.Name))
	for _, f := range p.RequiredFeatures {
		tw.line("\tlv2:requiredFeature %s ;", f)
	}
	for _, f := range p.OptionalFeatures {
		tw.line("\tlv2:optionalFeature %s ;", f)
	}
	tw.line("")

	for i, port := range p.Ports {
		if i == 0 {
			tw.line("\tlv2:port [")
		} else {
			tw.line("\t] , [")
		}
		if port.IsControl() {
			writeControlPort(tw, port)
		} else {
			writeEventPort(tw, port)
		}
	}
	tw.line("\t] .")

	if tw.err != nil {
		return tw.err
	}
	return tw.w.Flush()
}

func writeEventPort(tw *turtleWriter, port models.Port) {
	tw.line("\t\ta %s ;", strings.Join(port.Types, " ,\n\t\t\t\t"))
	if port.BufferType != "" {
		tw.line("\t\tatom:bufferType %s ;", port.BufferType)
	}
	if port.Supports != "" {
		tw.line("\t\tatom:supports %s ;", port.Supports)
	}
	tw.line("\t\tlv2:index %d ;", port.Index)
	tw.line("\t\tlv2:symbol %s ;", turtleString(port.Symbol))
	tw.line("\t\tlv2:name %s", turtleString(port.Name))
}

func writeControlPort(tw *turtleWriter, port models.Port) {
	tw.line("\t\ta %s;", strings.Join(port.Types, ", "))
	tw.line("\t\tlv2:index %d;", port.Index)
	tw.line("\t\tlv2:symbol %s;", turtleString(port.Symbol))
	tw.line("\t\tlv2:name %s;", turtleString(port.Name))
	tw.line("\t\tlv2:minimum %s;", formatNumber(*port.Minimum))
	tw.line("\t\tlv2:maximum %s;", formatNumber(*port.Maximum))
	tw.line("\t\tlv2:default %s;", formatNumber(*port.Default))
	for _, sp := range port.ScalePoints {
		tw.line("\t\tlv2:scalePoint [ rdfs:label %s; rdf:value %d ; ] ;", turtleString(sp.Label), sp.Value)
	}
	if len(port.Properties) > 0 {
		tw.line("\t\tlv2:portProperty %s;", strings.Join(port.Properties, ", "))
	}
}

// turtleEscaper applies the ECHAR escapes of a Turtle STRING_LITERAL_QUOTE.
var turtleEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// turtleString returns s as a double-quoted Turtle string literal.
func turtleString(s string) string {
	return `"` + turtleEscaper.Replace(s) + `"`
}

// formatNumber prints the shortest decimal form (2.0 -> "2", 0.5 -> "0.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
