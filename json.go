package justify

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, items []Justified) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	if items == nil {
		items = []Justified{}
	}
	return enc.Encode(items)
}
