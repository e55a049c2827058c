package output

import (
	"encoding/json"

	"github.com/ukaji3/multichord-go/pkg/multichord/models"
)

// ToJSON serializes the plugin model to JSON.
func ToJSON(p *models.Plugin, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(p, "", "  ")
	}
	return json.Marshal(p)
}
