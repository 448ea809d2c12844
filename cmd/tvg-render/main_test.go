package main

import (
	"testing"

	tinyvg "github.com/MasterQ32/TinyVG"
)

func TestResolveGeometryDefaultsToHeader(t *testing.T) {
	w, h, err := resolveGeometry("", tinyvg.Header{Width: 100, Height: 200})
	if err != nil {
		t.Fatalf("resolveGeometry: %v", err)
	}
	if w != 100 || h != 200 {
		t.Errorf("got (%d,%d), want (100,200)", w, h)
	}
}

func TestResolveGeometryWxH(t *testing.T) {
	w, h, err := resolveGeometry("320x240", tinyvg.Header{})
	if err != nil {
		t.Fatalf("resolveGeometry: %v", err)
	}
	if w != 320 || h != 240 {
		t.Errorf("got (%d,%d), want (320,240)", w, h)
	}
}

func TestResolveGeometrySingleInteger(t *testing.T) {
	w, h, err := resolveGeometry("64", tinyvg.Header{})
	if err != nil {
		t.Fatalf("resolveGeometry: %v", err)
	}
	if w != 64 || h != 64 {
		t.Errorf("got (%d,%d), want (64,64)", w, h)
	}
}

func TestResolveGeometryInvalid(t *testing.T) {
	if _, _, err := resolveGeometry("nonsense", tinyvg.Header{}); err == nil {
		t.Error("expected error for invalid geometry string")
	}
}

func TestResolveSuperSampleFactorDefault(t *testing.T) {
	f, err := resolveSuperSampleFactor(config{})
	if err != nil {
		t.Fatalf("resolveSuperSampleFactor: %v", err)
	}
	if f != 1 {
		t.Errorf("got %d, want 1", f)
	}
}

func TestResolveSuperSampleFactorAntiAlias(t *testing.T) {
	f, err := resolveSuperSampleFactor(config{antiAlias: true})
	if err != nil {
		t.Fatalf("resolveSuperSampleFactor: %v", err)
	}
	if f != 4 {
		t.Errorf("got %d, want 4", f)
	}
}

func TestResolveSuperSampleFactorExplicitOverridesAntiAlias(t *testing.T) {
	f, err := resolveSuperSampleFactor(config{antiAlias: true, superSample: 8})
	if err != nil {
		t.Fatalf("resolveSuperSampleFactor: %v", err)
	}
	if f != 8 {
		t.Errorf("got %d, want 8", f)
	}
}

func TestResolveSuperSampleFactorOutOfRange(t *testing.T) {
	if _, err := resolveSuperSampleFactor(config{superSample: 64}); err == nil {
		t.Error("expected error for out-of-range super-sampling factor")
	}
}

func TestParseArgsRequiresOutputForStdin(t *testing.T) {
	if _, err := parseArgs([]string{"-"}); err == nil {
		t.Error("expected error when reading stdin without -o")
	}
}

func TestParseArgsAcceptsStdinWithOutput(t *testing.T) {
	cfg, err := parseArgs([]string{"-o", "out.tga", "-"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.input != "-" || cfg.output != "out.tga" {
		t.Errorf("got input=%q output=%q", cfg.input, cfg.output)
	}
}

func TestParseArgsRejectsMultiplePositionals(t *testing.T) {
	if _, err := parseArgs([]string{"a.tvg", "b.tvg"}); err == nil {
		t.Error("expected error for multiple positional arguments")
	}
}

func TestDownsampleAveragesBlock(t *testing.T) {
	src := tinyvg.NewPixmap(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetPixel(x, y, [4]uint8{255, 255, 255, 255})
		}
	}
	// Make one 2x2 block's top-left pixel black; the rest stay white.
	src.SetPixel(0, 0, [4]uint8{0, 0, 0, 255})

	dst := downsample(src, 2, 2, 2)
	got := dst.GetPixel(0, 0)
	// Average of {0,255,255,255} over 4 samples for each of R, G and B,
	// since the black pixel is 0 in all three.
	want := uint8((0 + 255 + 255 + 255) / 4)
	if got[0] != want {
		t.Errorf("R = %d, want %d", got[0], want)
	}
	if got[1] != want || got[2] != want {
		t.Errorf("G/B = %d/%d, want %d/%d", got[1], got[2], want, want)
	}

	other := dst.GetPixel(1, 1)
	if other != ([4]uint8{255, 255, 255, 255}) {
		t.Errorf("untouched block = %v, want all-white", other)
	}
}
