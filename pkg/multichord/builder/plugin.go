package builder

import "github.com/ukaji3/multichord-go/pkg/multichord/models"

// PluginURI is the subject IRI of the multi-chord plugin.
const PluginURI = "urn:riban.multi_chord"

// Namespaces returns the prefix declarations in emission order.
func Namespaces() []models.Namespace {
	return []models.Namespace{
		{Alias: "atom", URI: "http://lv2plug.in/ns/ext/atom#"},
		{Alias: "doap", URI: "http://usefulinc.com/ns/doap#"},
		{Alias: "lv2", URI: "http://lv2plug.in/ns/lv2core#"},
		{Alias: "urid", URI: "http://lv2plug.in/ns/ext/urid#"},
		{Alias: "midi", URI: "http://lv2plug.in/ns/ext/midi#"},
		{Alias: "rdfs", URI: "http://www.w3.org/2000/01/rdf-schema#"},
		{Alias: "rdf", URI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	}
}

// Plugin builds the complete descriptor model.
func Plugin() *models.Plugin {
	return &models.Plugin{
		URI:              PluginURI,
		Types:            []string{"lv2:Plugin", "lv2:MIDIPlugin"},
		Name:             "MIDI Multi-Chord",
		RequiredFeatures: []string{"urid:map"},
		OptionalFeatures: []string{"lv2:hardRTCapable"},
		Namespaces:       Namespaces(),
		Ports:            Ports(),
	}
}
