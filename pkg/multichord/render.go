package multichord

import (
	"io"

	"github.com/ukaji3/multichord-go/pkg/multichord/builder"
	"github.com/ukaji3/multichord-go/pkg/multichord/models"
	"github.com/ukaji3/multichord-go/pkg/multichord/output"
)

// Describe returns the descriptor model.
func Describe() *models.Plugin {
	return builder.Plugin()
}

// Render writes the descriptor to w in the requested format.
func Render(w io.Writer, opts Options) error {
	p := Describe()

	switch opts.Format {
	case FormatTurtle, "":
		if err := output.ToTurtle(w, p); err != nil {
			return NewEmitError(FormatTurtle, err)
		}
	case FormatJSON:
		data, err := output.ToJSON(p, opts.Pretty)
		if err != nil {
			return NewEmitError(FormatJSON, err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return NewEmitError(FormatJSON, err)
		}
	default:
		return NewEmitError(opts.Format, ErrUnknownFormat)
	}

	return nil
}
