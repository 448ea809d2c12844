package tinyvg

import (
	internalcolor "github.com/MasterQ32/TinyVG/internal/color"
)

// Color is an RGBA color with components in [0,1]. Stored values are
// treated as already gamma-compressed (γ=2.2); the sampler's sRGB-aware
// lerp converts to linear space before interpolating.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Bytes converts the color to clamped, rounded 8-bit components.
func (c Color) Bytes() (r, g, b, a uint8) {
	u8 := internalcolor.F32ToU8(internalcolor.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A})
	return u8.R, u8.G, u8.B, u8.A
}

// ColorTable is an immutable sequence of colors referenced by style
// definitions via index. The table does not change during a render.
type ColorTable []Color

// At returns the color at index, or the zero color if out of range — a
// defensive clamp rather than a panic, matching the renderer's policy of
// preferring clamping to rejection.
func (t ColorTable) At(index int) Color {
	if index < 0 || index >= len(t) {
		return Color{}
	}
	return t[index]
}

// LerpSRGB performs the sRGB-aware interpolation used by the style
// sampler: each RGB channel is converted to linear space via v^γ,
// linearly interpolated, and converted back via v^(1/γ). Alpha gets no
// gamma conversion, since alpha is never gamma-encoded; it is not
// interpolated either (see below).
//
// Known bug, preserved intentionally (see design notes): the alpha
// component of the result always comes from c0.A, not a true lerp between
// c0.A and c1.A. This reproduces an observed reference-renderer behavior
// rather than the "obviously correct" interpolation, and test cases must
// reflect it.
func LerpSRGB(c0, c1 Color, t float32) Color {
	l0 := internalcolor.SRGBToLinearColor(internalcolor.ColorF32{R: c0.R, G: c0.G, B: c0.B, A: c0.A})
	l1 := internalcolor.SRGBToLinearColor(internalcolor.ColorF32{R: c1.R, G: c1.G, B: c1.B, A: c1.A})

	lerped := internalcolor.ColorF32{
		R: l0.R + (l1.R-l0.R)*t,
		G: l0.G + (l1.G-l0.G)*t,
		B: l0.B + (l1.B-l0.B)*t,
		A: c0.A, // intentional: see LerpSRGB doc comment
	}

	srgb := internalcolor.LinearToSRGBColor(lerped)
	return Color{R: srgb.R, G: srgb.G, B: srgb.B, A: srgb.A}
}
