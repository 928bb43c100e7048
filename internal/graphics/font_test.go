package graphics

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func bakeTestAtlas(t *testing.T) *FontAtlas {
	t.Helper()
	face, err := newFace(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("newFace failed: %v", err)
	}
	defer face.Close()

	img, glyphs := bakeGlyphs(face)
	return &FontAtlas{Width: img.Rect.Dx(), Height: img.Rect.Dy(), Glyphs: glyphs}
}

func TestBakeGlyphsFitAtlas(t *testing.T) {
	a := bakeTestAtlas(t)
	if len(a.Glyphs) != int(lastGlyph-firstGlyph)+1 {
		t.Fatalf("Expected every printable ASCII glyph, got %d", len(a.Glyphs))
	}
	for r, g := range a.Glyphs {
		if g.AtlasX+g.Width > float32(a.Width) || g.AtlasY+g.Height > float32(a.Height) {
			t.Errorf("Glyph %q at (%v,%v) size %vx%v exceeds %dx%d atlas",
				r, g.AtlasX, g.AtlasY, g.Width, g.Height, a.Width, a.Height)
		}
	}
	if space := a.Glyphs[' ']; space.Width != 0 || space.Advance <= 0 {
		t.Errorf("Expected an invisible space with an advance, got %+v", space)
	}
}

func TestLayoutAndMeasure(t *testing.T) {
	a := bakeTestAtlas(t)

	verts := a.layout("A B", 10, 20, 1, nil)
	// Two visible glyphs, six vertices each, four floats per vertex.
	if len(verts) != 2*6*4 {
		t.Fatalf("Expected 48 floats, got %d", len(verts))
	}

	w, h := a.Measure("A B", 2)
	want := float32(a.Glyphs['A'].Advance+a.Glyphs[' '].Advance+a.Glyphs['B'].Advance) * 2
	if w != want {
		t.Errorf("Expected width %v, got %v", want, w)
	}
	if h <= 0 {
		t.Errorf("Expected a positive height, got %v", h)
	}

	// Unknown runes advance like a space and draw nothing.
	if got := a.layout("é", 0, 0, 1, nil); len(got) != 0 {
		t.Errorf("Expected no quads for a missing glyph, got %d floats", len(got))
	}
}
