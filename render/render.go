// Package render turns a grid and its routes into images: a grayscale
// elevation map with one pixel per cell, single-pixel path overlays at each
// point's (X=column, Y=row) position, optional integer upscaling, and PNG output.
//
// It only consumes grid values and finished paths; it makes no routing decisions.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/imece/terrain"
)

// ErrBadScale indicates a scale factor below 1.
var ErrBadScale = errors.New("render: scale factor must be at least 1")

// Overlay colours for the two kinds of route.
var (
	EfficientPathColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	EscapePathColor    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Grayscale returns an image the size of g whose pixel (col, row) is the
// cell's elevation rescaled onto 0..255 (terrain.Grid.Grayscale).
func Grayscale(g *terrain.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g.Grayscale() {
		for x, v := range row {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	return img
}

// DrawPath marks every point of path on img in colour c. Points outside
// the image are skipped.
func DrawPath(img draw.Image, path []terrain.Point, c color.Color) {
	b := img.Bounds()
	for _, p := range path {
		if !image.Pt(p.X, p.Y).In(b) {
			continue
		}
		img.Set(p.X, p.Y, c)
	}
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// so each cell stays a crisp square.
func Scale(img image.Image, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, factor)
	}
	sb := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)

	return dst, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNGFile writes img to path as PNG.
func WritePNGFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	if err = EncodePNG(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}

	return nil
}
