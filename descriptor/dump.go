package descriptor

import (
	"fmt"
	"io"
)

// Dump writes descriptor bytes as a Go byte-slice literal, for embedding
// captured descriptors in source code.
func Dump(w io.Writer, name string, data []byte) error {
	if _, err := fmt.Fprintf(w, "var %s = []byte{", name); err != nil {
		return err
	}
	for i, b := range data {
		if i%12 == 0 {
			if _, err := io.WriteString(w, "\n\t"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "0x%02X,", b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n}\n")
	return err
}
