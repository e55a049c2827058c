package models

// ScalePoint represents a labeled discrete value of a control port.
type ScalePoint struct {
	// Label is the rdfs:label shown by hosts.
	Label string `json:"label"`
	// Value is the rdf:value of the point.
	Value int `json:"value"`
}

// Port represents one indexed endpoint of the plugin.
type Port struct {
	// Index is the zero-based lv2:index.
	Index int `json:"index"`
	// Symbol is the unique machine name.
	Symbol string `json:"symbol"`
	// Name is the display name.
	Name string `json:"name"`
	// Types lists the port classes (e.g., lv2:InputPort, lv2:ControlPort).
	Types []string `json:"types"`
	// BufferType is the atom:bufferType of event ports.
	BufferType string `json:"buffer_type,omitempty"`
	// Supports is the atom:supports value of event ports.
	Supports string `json:"supports,omitempty"`
	// Minimum is the lower bound (nil for event ports).
	Minimum *float64 `json:"minimum,omitempty"`
	// Maximum is the upper bound (nil for event ports).
	Maximum *float64 `json:"maximum,omitempty"`
	// Default is the initial value (nil for event ports).
	Default *float64 `json:"default,omitempty"`
	// ScalePoints contains enumerated values in ascending order.
	ScalePoints []ScalePoint `json:"scale_points,omitempty"`
	// Properties lists lv2:portProperty values.
	Properties []string `json:"properties,omitempty"`
}

// IsControl reports whether the port carries a numeric range.
func (p Port) IsControl() bool {
	return p.Minimum != nil && p.Maximum != nil && p.Default != nil
}
