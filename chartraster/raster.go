// Implements a raster backend for generated chart documents,
// by wrapping oksvg and rasterx.
package chartraster

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Raster parses an SVG chart document and renders it into an
// RGBA image of its declared pixel size.
func Raster(doc io.Reader) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(doc)
	if err != nil {
		return nil, err
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.New("chartraster: document has no usable size")
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// ToPNG rasterizes an SVG chart document and encodes the
// result as PNG.
func ToPNG(doc io.Reader, out io.Writer) error {
	img, err := Raster(doc)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}
