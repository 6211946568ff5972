package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/fortcase/internal/engine"
)

// WriteNDJSON streams one JSON object per file, then one per failure.
func WriteNDJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, f := range res.Files {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	for _, e := range res.Errors {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the whole result as a single indented document.
func WriteJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
