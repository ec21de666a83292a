// mkicon generates the placeholder extension icons into ./assets.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cursoriq/extension/internal/icon"
	"github.com/cursoriq/extension/internal/paths"
)

var sizes = []int{16, 48, 128}

func main() {
	if err := run(os.Stdout, paths.AssetsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders every icon size into dir, creating it if needed, and stops at
// the first failure.
func run(w io.Writer, dir string) error {
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, size := range sizes {
		p := paths.IconPath(dir, size)
		if err := icon.Render(size, p); err != nil {
			return err
		}
		fmt.Fprintf(w, "Generated %s (%dx%d)\n", p, size, size)
	}
	fmt.Fprintln(w, "All icons generated successfully!")
	return nil
}
