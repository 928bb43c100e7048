package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas is a baked ASCII glyph set and the texture holding it
type FontAtlas struct {
	TextureID  uint32
	Width      int
	Height     int
	LineHeight int
	Glyphs     map[rune]Glyph
}

const (
	firstGlyph   = rune(32)
	lastGlyph    = rune(126)
	atlasWidth   = 512
	glyphPadding = 1
)

func newFace(ttf []byte, pixels float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// bakeGlyphs packs printable ASCII into rows of a single-channel image.
func bakeGlyphs(face font.Face) (*image.Alpha, map[rune]Glyph) {
	// First pass: measure rows to size the atlas
	rowH, offsetX, requiredH := 0, 0, 0
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if offsetX+dr.Dx()+glyphPadding > atlasWidth {
			requiredH += rowH + glyphPadding
			offsetX, rowH = 0, 0
		}
		offsetX += dr.Dx() + glyphPadding
		rowH = max(rowH, dr.Dy())
	}
	requiredH += rowH + glyphPadding

	atlas := image.NewAlpha(image.Rect(0, 0, atlasWidth, requiredH))
	glyphs := make(map[rune]Glyph, int(lastGlyph-firstGlyph)+1)

	// Second pass: render each glyph and record metrics
	offsetX, offsetY, rowH := 0, 0, 0
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gw == 0 || gh == 0 {
			// Space: advance only
			glyphs[r] = g
			continue
		}

		if offsetX+gw+glyphPadding > atlasWidth {
			offsetX = 0
			offsetY += rowH + glyphPadding
			rowH = 0
		}
		draw.Draw(atlas, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)

		g.AtlasX, g.AtlasY = float32(offsetX), float32(offsetY)
		g.Width, g.Height = float32(gw), float32(gh)
		glyphs[r] = g

		offsetX += gw + glyphPadding
		rowH = max(rowH, gh)
	}
	return atlas, glyphs
}

// NewFontAtlas bakes a TrueType or OpenType font at the given pixel size and
// uploads it as a GL_RED texture.
func NewFontAtlas(ttf []byte, pixels float64) (*FontAtlas, error) {
	face, err := newFace(ttf, pixels)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	img, glyphs := bakeGlyphs(face)
	a := &FontAtlas{
		Width:      img.Rect.Dx(),
		Height:     img.Rect.Dy(),
		LineHeight: face.Metrics().Height.Ceil(),
		Glyphs:     glyphs,
	}

	gl.GenTextures(1, &a.TextureID)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.Width), int32(a.Height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return a, nil
}

// Delete releases the atlas texture
func (a *FontAtlas) Delete() {
	DeleteTexture(a.TextureID)
	a.TextureID = 0
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, height float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		width += float32(g.Advance) * scale
		height = max(height, g.Height*scale)
	}
	return width, height
}

// layout appends two triangles per visible glyph to out. Each vertex is
// x, y, u, v with (x, y) in pixels, y growing downwards from the baseline.
func (a *FontAtlas) layout(text string, x, y, scale float32, out []float32) []float32 {
	aw, ah := float32(a.Width), float32(a.Height)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return out
}

// TextRenderer draws screen space text with a FontAtlas
type TextRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4

	projectionLoc int32
	colorLoc      int32
	textLoc       int32
}

// NewTextRenderer compiles the text program and creates its vertex buffer
func NewTextRenderer(atlas *FontAtlas, paths ShaderPaths) (*TextRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(paths)
	if err != nil {
		return nil, err
	}
	tr := &TextRenderer{
		atlas:         atlas,
		shader:        shader,
		projectionLoc: gl.GetUniformLocation(shader.ID, gl.Str("projection\x00")),
		colorLoc:      gl.GetUniformLocation(shader.ID, gl.Str("textColor\x00")),
		textLoc:       gl.GetUniformLocation(shader.ID, gl.Str("text\x00")),
	}

	var previous int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &previous)
	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(uint32(previous))

	return tr, nil
}

// SetViewport updates the pixel projection
func (tr *TextRenderer) SetViewport(width, height int) {
	tr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines top to bottom starting with the baseline at
// (x, y). It restores the depth, cull and vertex array state it changes.
func (tr *TextRenderer) RenderLines(lines []string, x, y, scale float32, color mgl32.Vec3) {
	var vertices []float32
	step := float32(tr.atlas.LineHeight) * scale
	for _, line := range lines {
		vertices = tr.atlas.layout(line, x, y, scale, vertices)
		y += step
	}
	if len(vertices) == 0 {
		return
	}

	var previous int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &previous)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(tr.shader.ID)
	gl.UniformMatrix4fv(tr.projectionLoc, 1, false, &tr.projection[0])
	gl.Uniform3f(tr.colorLoc, color.X(), color.Y(), color.Z())
	gl.Uniform1i(tr.textLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.atlas.TextureID)

	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(uint32(previous))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Delete releases the program and buffers. The atlas is owned by the caller.
func (tr *TextRenderer) Delete() {
	gl.DeleteBuffers(1, &tr.vbo)
	gl.DeleteVertexArrays(1, &tr.vao)
	tr.shader.Delete()
}
