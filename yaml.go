package justify

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, items []Justified) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(items) == 1 {
		if err := enc.Encode(items[0]); err != nil {
			return err
		}
	} else {
		if items == nil {
			items = []Justified{}
		}
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
	return enc.Close()
}
