// Command gen writes doc/UNIFORMS.md, the table of GLSL uniform types and
// the upload call each one is dispatched to.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/shader"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	out := filepath.Join("doc", "UNIFORMS.md")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	calls := shader.Uploads()
	if err := writeTable(f, calls); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %d uniform types to %s\n", len(calls), out)
	return f.Close()
}

func writeTable(w io.Writer, calls []shader.UploadCall) error {
	if _, err := fmt.Fprint(w, "# Uniform dispatch\n\n"+
		"Generated by `go run ./doc/gen/`. Every type also accepts arrays through\n"+
		"`VectorArray` or `MatrixArray`; the count is passed to the same call.\n\n"+
		"| GLSL type | Go component | Shape | Upload call |\n"+
		"|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, c := range calls {
		shape := c.Type.Shape.String()
		switch c.Type.Shape {
		case shader.ShapeVector:
			shape = fmt.Sprintf("vector of %d", c.Type.Size)
		case shader.ShapeMatrix:
			shape = fmt.Sprintf("%d rows x %d cols", c.Type.Rows, c.Type.Cols)
		}
		if _, err := fmt.Fprintf(w, "| `%s` | `%s` | %s | `%s` |\n", c.Type, c.Type.Kind, shape, c.Call); err != nil {
			return err
		}
	}
	return nil
}
