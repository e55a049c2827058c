// Package models defines data structures for the LV2 plugin descriptor.
package models

// Namespace represents a Turtle prefix declaration.
type Namespace struct {
	// Alias is the short prefix name without the trailing colon.
	Alias string `json:"alias"`
	// URI is the namespace IRI.
	URI string `json:"uri"`
}

// Plugin represents the subject block of the descriptor and its ports.
type Plugin struct {
	// URI is the plugin subject IRI.
	URI string `json:"uri"`
	// Types lists the rdf:type values of the plugin (e.g., lv2:Plugin).
	Types []string `json:"types"`
	// Name is the doap:name shown by hosts.
	Name string `json:"name"`
	// RequiredFeatures lists lv2:requiredFeature values.
	RequiredFeatures []string `json:"required_features,omitempty"`
	// OptionalFeatures lists lv2:optionalFeature values.
	OptionalFeatures []string `json:"optional_features,omitempty"`
	// Namespaces contains the prefixes declared ahead of the subject.
	Namespaces []Namespace `json:"namespaces"`
	// Ports contains all ports ordered by index.
	Ports []Port `json:"ports"`
}
