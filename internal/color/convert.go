package color

import "math"

// Gamma is the exponent used to approximate sRGB as a simple power law,
// per the TinyVG rendering model. TinyVG treats stored channel values as
// already gamma-encoded with this exponent rather than with the piecewise
// true sRGB transfer function, trading accuracy for a single pow() call.
const Gamma = 2.2

// SRGBToLinear converts a gamma-compressed component to linear via v^Gamma.
// Input and output are in range [0,1].
func SRGBToLinear(v float32) float32 {
	return float32(math.Pow(float64(v), Gamma))
}

// LinearToSRGB converts a linear component back to gamma-compressed space
// via v^(1/Gamma). Input and output are in range [0,1].
func LinearToSRGB(v float32) float32 {
	return float32(math.Pow(float64(v), 1.0/Gamma))
}

// SRGBToLinearColor converts a full color from gamma-compressed to linear
// space. Only RGB components are converted; alpha remains linear (never
// gamma-encoded).
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor converts a full color from linear to gamma-compressed
// space. Only RGB components are converted; alpha remains linear (never
// gamma-encoded).
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
