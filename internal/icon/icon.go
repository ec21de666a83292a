// Package icon draws the placeholder extension icon: a blue disc with a
// white question mark centered on it.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/cursoriq/extension/internal/paths"
)

const (
	// Margin is the inset of the disc from each canvas edge, in pixels.
	Margin = 2
	// FontScale is the font size as a fraction of the icon size.
	FontScale = 0.6
	// Glyph is the text drawn on the disc.
	Glyph = "?"
)

var (
	Fill = color.RGBA{74, 144, 226, 255} // #4A90E2
	Ink  = color.RGBA{255, 255, 255, 255}
)

// Renderer draws icons. The zero value probes no font files and always uses
// the built-in face; New probes SystemFontPaths.
//
// A Renderer holds no mutable state and is safe for concurrent use.
type Renderer struct {
	FontPaths []string
}

// New returns a Renderer that probes SystemFontPaths.
func New() *Renderer {
	return &Renderer{FontPaths: SystemFontPaths}
}

// Draw renders a size×size icon with the default Renderer.
func Draw(size int) (*image.RGBA, error) {
	return New().Draw(size)
}

// Render writes a size×size PNG icon to path with the default Renderer.
func Render(size int, path string) error {
	return New().Render(size, path)
}

// Draw renders a size×size icon and returns its pixels.
func (r *Renderer) Draw(size int) (*image.RGBA, error) {
	dc, err := r.draw(size)
	if err != nil {
		return nil, err
	}
	return dc.Image().(*image.RGBA), nil
}

// Render draws a size×size icon and writes it to path as PNG, replacing any
// existing file. The parent directory of path must exist.
func (r *Renderer) Render(size int, path string) error {
	dc, err := r.draw(size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(size int) (*gg.Context, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	dc := gg.NewContext(size, size)
	drawDisc(dc, size)

	face, _ := LoadFace(r.FontPaths, FontSize(size))
	defer face.Close()
	drawGlyph(dc, face, size)
	return dc, nil
}

// FontSize returns the pixel size requested from font files for an icon of
// the given size. The built-in face ignores it.
func FontSize(size int) int {
	return int(float64(size) * FontScale)
}

// drawDisc fills the circle inscribed in the canvas inset by Margin.
// Canvases too small to hold it are left blank.
func drawDisc(dc *gg.Context, size int) {
	d := float64(size - 2*Margin)
	if d <= 0 {
		return
	}
	c := float64(size) / 2
	dc.DrawEllipse(c, c, d/2, d/2)
	dc.SetColor(Fill)
	dc.Fill()
}

func drawGlyph(dc *gg.Context, face font.Face, size int) {
	bounds, _ := font.BoundString(face, Glyph)
	dot := Origin(size, bounds)
	dc.SetFontFace(face)
	dc.SetColor(Ink)
	dc.DrawString(Glyph, float64(dot.X), float64(dot.Y))
}

// Origin returns the baseline dot at which text with the given ink bounds
// (relative to its own dot) sits centered on a size×size canvas.
//
// The ink box is centered, not the line box: subtracting the ink top puts
// fonts with large ascent or bearing in the visual middle. Horizontally the
// dot is placed at the centered left edge of the box.
func Origin(size int, bounds fixed.Rectangle26_6) image.Point {
	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := x1-x0, y1-y0
	// >>1 floors, also when the text is larger than the canvas.
	return image.Pt((size-w)>>1, (size-h)>>1-y0)
}
