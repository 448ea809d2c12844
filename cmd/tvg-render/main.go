// Command tvg-render decodes a TinyVG binary file and rasterizes it to a
// TGA image, following the teacher's small flag-driven CLI style.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tinyvg "github.com/MasterQ32/TinyVG"
	"github.com/MasterQ32/TinyVG/format"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tvg-render:", err)
		os.Exit(1)
	}
}

type config struct {
	output       string
	geometry     string
	antiAlias    bool
	superSample  int
	verbose      bool
	input        string
}

func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("tvg-render", flag.ContinueOnError)
	var cfg config
	fs.StringVar(&cfg.output, "o", "", "output file path, - for stdout")
	fs.StringVar(&cfg.output, "output", "", "output file path, - for stdout")
	fs.StringVar(&cfg.geometry, "g", "", "output geometry, WxH or a single integer")
	fs.StringVar(&cfg.geometry, "geometry", "", "output geometry, WxH or a single integer")
	fs.BoolVar(&cfg.antiAlias, "a", false, "anti-alias via 4x supersampling")
	fs.BoolVar(&cfg.antiAlias, "anti-alias", false, "anti-alias via 4x supersampling")
	fs.IntVar(&cfg.superSample, "s", 0, "supersampling factor, 1..32 (overrides -a)")
	fs.IntVar(&cfg.superSample, "super-sampling", 0, "supersampling factor, 1..32 (overrides -a)")
	fs.BoolVar(&cfg.verbose, "v", false, "log verbose diagnostics to stderr")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log verbose diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return config{}, fmt.Errorf("expected exactly one input path, got %d", len(rest))
	}
	cfg.input = rest[0]

	if cfg.input == "-" && cfg.output == "" {
		return config{}, fmt.Errorf("reading from stdin requires -o/--output")
	}

	return cfg, nil
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	if cfg.verbose {
		tinyvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	in, err := openInput(cfg.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	doc, err := format.Decode(in)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	width, height, err := resolveGeometry(cfg.geometry, doc.Header)
	if err != nil {
		return err
	}

	factor, err := resolveSuperSampleFactor(cfg)
	if err != nil {
		return err
	}

	renderWidth := width * factor
	renderHeight := height * factor

	fb := tinyvg.NewPixmap(renderWidth, renderHeight)
	if err := tinyvg.RenderAll(fb, doc.Header, doc.Colors, doc.Commands); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := fb
	if factor > 1 {
		out = downsample(fb, width, height, factor)
	}

	w, err := openOutput(cfg.output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer w.Close()

	if err := out.ToTGA(w); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path) //nolint:gosec // path is user-provided intentionally
}

type writeCloser struct {
	io.Writer
	closer func() error
}

func (w writeCloser) Close() error { return w.closer() }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return writeCloser{Writer: os.Stdout, closer: func() error { return nil }}, nil
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return f, nil
}

// resolveGeometry parses -g/--geometry, falling back to the header's
// logical size when the flag is unset.
func resolveGeometry(spec string, header tinyvg.Header) (width, height int, err error) {
	if spec == "" {
		return int(header.Width), int(header.Height), nil
	}

	if w, h, ok := strings.Cut(spec, "x"); ok {
		wi, err := strconv.Atoi(w)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid geometry %q: %w", spec, err)
		}
		hi, err := strconv.Atoi(h)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid geometry %q: %w", spec, err)
		}
		return wi, hi, nil
	}

	side, err := strconv.Atoi(spec)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geometry %q: %w", spec, err)
	}
	return side, side, nil
}

func resolveSuperSampleFactor(cfg config) (int, error) {
	if cfg.superSample != 0 {
		if cfg.superSample < 1 || cfg.superSample > 32 {
			return 0, fmt.Errorf("super-sampling factor %d out of range [1,32]", cfg.superSample)
		}
		return cfg.superSample, nil
	}
	if cfg.antiAlias {
		return 4, nil
	}
	return 1, nil
}

// downsample box-filters a factor*width by factor*height pixmap down to
// width by height, averaging each factor x factor block of source pixels.
func downsample(src *tinyvg.Pixmap, width, height, factor int) *tinyvg.Pixmap {
	dst := tinyvg.NewPixmap(width, height)
	samples := factor * factor

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a int
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					c := src.GetPixel(x*factor+dx, y*factor+dy)
					r += int(c[0])
					g += int(c[1])
					b += int(c[2])
					a += int(c[3])
				}
			}
			dst.SetPixel(x, y, [4]uint8{
				uint8(r / samples),
				uint8(g / samples),
				uint8(b / samples),
				uint8(a / samples),
			})
		}
	}
	return dst
}
