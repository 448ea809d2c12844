package tinyvg

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is an in-memory RGBA pixel buffer implementing Framebuffer, plus
// image.Image for interoperability with the standard image ecosystem and
// encoders for the CLI's TGA output and for PNG.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, row-major, top-left origin
}

var _ Framebuffer = (*Pixmap)(nil)
var _ image.Image = (*Pixmap)(nil)

// NewPixmap creates a zeroed (transparent black) pixmap of the given size.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width implements Framebuffer.
func (p *Pixmap) Width() int { return p.width }

// Height implements Framebuffer.
func (p *Pixmap) Height() int { return p.height }

// SetPixel implements Framebuffer. Out-of-bounds writes are silently
// dropped; Render itself never issues one (see render.go's clipping).
func (p *Pixmap) SetPixel(x, y int, c [4]uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c[0]
	p.data[i+1] = c[1]
	p.data[i+2] = c[2]
	p.data[i+3] = c[3]
}

// GetPixel returns the color at (x, y), or the zero color if out of bounds.
func (p *Pixmap) GetPixel(x, y int) [4]uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return [4]uint8{}
	}
	i := (y*p.width + x) * 4
	return [4]uint8{p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]}
}

// Clear fills the entire pixmap with a single color.
func (p *Pixmap) Clear(c [4]uint8) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c[0]
		p.data[i+1] = c[1]
		p.data[i+2] = c[2]
		p.data[i+3] = c[3]
	}
}

// Data returns the raw RGBA buffer.
func (p *Pixmap) Data() []uint8 { return p.data }

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG encodes the pixmap as a PNG to path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, p)
}

// ToTGA writes the pixmap as a 32-bit, top-left-origin, uncompressed TGA
// image to w, swapping RGBA to BGRA as the format requires.
func (p *Pixmap) ToTGA(w io.Writer) error {
	header := make([]byte, 18)
	header[2] = 2 // uncompressed true-color
	binary.LittleEndian.PutUint16(header[12:], uint16(p.width))
	binary.LittleEndian.PutUint16(header[14:], uint16(p.height))
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // 8 bits alpha, top-left origin (bit 5 set)

	if _, err := w.Write(header); err != nil {
		return err
	}

	row := make([]byte, p.width*4)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.GetPixel(x, y)
			i := x * 4
			row[i+0] = c[2] // B
			row[i+1] = c[1] // G
			row[i+2] = c[0] // R
			row[i+3] = c[3] // A
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
