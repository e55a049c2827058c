package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/multichord-go/pkg/multichord/builder"
	"github.com/ukaji3/multichord-go/pkg/multichord/models"
)

func TestToJSON(t *testing.T) {
	data, err := ToJSON(builder.Plugin(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var p models.Plugin
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(p.Ports) != 98 {
		t.Errorf("Expected 98 ports, got %d", len(p.Ports))
	}
	if p.Ports[0].Minimum != nil {
		t.Error("Event port should omit minimum")
	}
	if p.Ports[2].Symbol != "offset_c1" || len(p.Ports[2].ScalePoints) != 25 {
		t.Errorf("Unexpected first offset port: %+v", p.Ports[2])
	}
	if strings.Contains(string(data), "\n") {
		t.Error("Compact output should be a single line")
	}
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(builder.Plugin(), true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"uri\": \"urn:riban.multi_chord\"") {
		t.Errorf("Pretty output is not indented: %.80s", data)
	}
}
