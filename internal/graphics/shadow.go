package graphics

import (
	"errors"
	"fmt"

	"shadow-demo/internal/config"
	"shadow-demo/internal/light"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrFramebufferIncomplete is returned when a shadow framebuffer fails the
// completeness check.
var ErrFramebufferIncomplete = errors.New("graphics: framebuffer incomplete")

// ShadowAllocator creates depth-only framebuffers for lights.
type ShadowAllocator struct{}

// Allocate creates a 2D or cube depth texture sized from the window
// dimensions and attaches it to a new framebuffer.
func (ShadowAllocator) Allocate(v light.Variant) (light.ShadowBuffer, error) {
	b := light.ShadowBuffer{Variant: v}
	if v == light.Cube {
		side := config.CubeShadowSize()
		b.Width, b.Height = side, side
	} else {
		b.Width, b.Height = config.SimpleShadowSize()
	}

	gl.GenTextures(1, &b.Texture)
	if v == light.Cube {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, b.Texture)
		for face := uint32(0); face < 6; face++ {
			gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, gl.DEPTH_COMPONENT24,
				b.Width, b.Height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
		}
		gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, b.Texture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24,
			b.Width, b.Height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
		// Outside the light frustum counts as lit.
		border := []float32{1, 1, 1, 1}
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	gl.GenFramebuffers(1, &b.Framebuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.Framebuffer)
	gl.FramebufferTexture(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, b.Texture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		ShadowAllocator{}.Release(b)
		return light.ShadowBuffer{}, fmt.Errorf("%s shadow buffer (status 0x%x): %w", v, status, ErrFramebufferIncomplete)
	}
	return b, nil
}

// Release deletes the framebuffer and its texture.
func (ShadowAllocator) Release(b light.ShadowBuffer) {
	if b.Framebuffer != 0 {
		gl.DeleteFramebuffers(1, &b.Framebuffer)
	}
	if b.Texture != 0 {
		gl.DeleteTextures(1, &b.Texture)
	}
}
