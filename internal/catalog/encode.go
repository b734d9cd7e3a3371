package catalog

import (
	"bufio"
	"fmt"
	"io"
)

// Format renders m as a single model-file line without the newline.
func Format(m Model) string {
	return m.Name + ": " + m.Shape.String()
}

// Write emits c in the model-file format.
func Write(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# glsnake models (%d)\n", c.Len())
	for _, m := range c.models {
		bw.WriteString(Format(m))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write models: %w", err)
	}
	return nil
}
