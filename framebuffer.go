package tinyvg

import "fmt"

// Framebuffer is the capability set Render needs from a caller-owned pixel
// target: integer dimensions and a single-pixel write. It is a narrow
// interface on purpose — the renderer never reads the framebuffer back, and
// never takes ownership of it.
type Framebuffer interface {
	Width() int
	Height() int
	SetPixel(x, y int, c [4]uint8)
}

// FallibleFramebuffer is implemented by framebuffers that can reject a
// write (e.g. a bounded device buffer). Render prefers TrySetPixel when a
// framebuffer implements it, surfacing a failure as ErrOutputFull.
type FallibleFramebuffer interface {
	Framebuffer
	TrySetPixel(x, y int, c [4]uint8) error
}

func setPixel(fb Framebuffer, x, y int, c [4]uint8) error {
	if ff, ok := fb.(FallibleFramebuffer); ok {
		if err := ff.TrySetPixel(x, y, c); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputFull, err)
		}
		return nil
	}
	fb.SetPixel(x, y, c)
	return nil
}
