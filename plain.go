package justify

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, items []Justified) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	return nil
}
