package icon

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BuiltinFont is the source reported by LoadFace when no font file loaded.
const BuiltinFont = "builtin"

// SystemFontPaths are the font files probed, in order, before falling back
// to the built-in face.
var SystemFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Arial.ttf",
}

// LoadFace returns a face for the first font in fontPaths that loads at px
// pixels, along with the path it came from. Candidates that are missing or
// fail to parse are skipped. If none load, the fixed-size basicfont face is
// returned with source BuiltinFont, so LoadFace never fails.
func LoadFace(fontPaths []string, px int) (font.Face, string) {
	for _, p := range fontPaths {
		face, err := openFace(p, px)
		if err != nil {
			continue
		}
		return face, p
	}
	return basicfont.Face7x13, BuiltinFont
}

// openFace parses a TrueType/OpenType file or collection and builds a face
// from its first font.
func openFace(path string, px int) (font.Face, error) {
	if px < 1 {
		return nil, fmt.Errorf("font size %d too small", px)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s at %dpx: %w", path, px, err)
	}
	return face, nil
}
