/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package synth generates synthetic star-field rasters for exercising the extraction and
// matching pipeline end to end without a real camera or FITS file: catalog sources are projected
// onto a tangent-plane image, rendered as Moffat-profile point sources plus Gaussian read noise.
package synth

/*****************************************************************************************************************/

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/catalog"
	"github.com/nks676/startracker/pkg/projection"
	stats "github.com/nks676/startracker/pkg/statistics"
)

/*****************************************************************************************************************/

// Params configures a synthetic field's optics and noise characteristics.
type Params struct {
	PixelScale    float64 // degrees per pixel
	Background    float64 // background level in intensity units
	ReadNoise     float64 // standard deviation of the per-pixel Gaussian read noise
	SeeingPixels  float64 // approximate FWHM of the point-spread function, in pixels
	PeakIntensity float64 // peak intensity of a magnitude-0 source
}

/*****************************************************************************************************************/

// Field is a synthetic raster centered on a sky coordinate, with a Moffat profile point source
// for every catalog row projected inside the frame.
type Field struct {
	Width, Height int
	Center        astrometry.ICRSEquatorialCoordinate
	Params        Params
	Pixels        []float64
}

/*****************************************************************************************************************/

// Generate projects rows onto a gnomonic tangent plane centered at center and renders each as a
// Moffat point-spread function on top of Gaussian background noise.
func Generate(width, height int, center astrometry.ICRSEquatorialCoordinate, rows []catalog.Row, params Params) *Field {
	pixels := make([]float64, width*height)

	for i := range pixels {
		pixels[i] = params.Background + stats.NormalDistributedRandomNumber(0, params.ReadNoise)
	}

	const beta = 3.0
	precision := math.Pow(params.SeeingPixels, -2)

	for _, row := range rows {
		x0, y0 := projection.ConvertEquatorialToGnomic(row.RA, row.Dec, center.RA, center.Dec)

		// ConvertEquatorialToGnomic returns tangent-plane coordinates in radians; scale to pixels
		// and center on the frame.
		px := float64(width)/2 + x0/projection.Radians(params.PixelScale)
		py := float64(height)/2 - y0/projection.Radians(params.PixelScale)

		if px < 0 || px >= float64(width) || py < 0 || py >= float64(height) {
			continue
		}

		flux := params.PeakIntensity * math.Pow(10, -0.4*row.Magnitude)

		radius := params.SeeingPixels * 4

		xMin := int(math.Max(0, px-radius))
		xMax := int(math.Min(float64(width-1), px+radius))
		yMin := int(math.Max(0, py-radius))
		yMax := int(math.Min(float64(height-1), py+radius))

		for y := yMin; y <= yMax; y++ {
			for x := xMin; x <= xMax; x++ {
				dx := float64(x) - px
				dy := float64(y) - py
				r := (dx*dx + dy*dy) * precision
				pixels[y*width+x] += flux * math.Exp(-beta*math.Log(1.0+r))
			}
		}
	}

	return &Field{Width: width, Height: height, Center: center, Params: params, Pixels: pixels}
}

/*****************************************************************************************************************/

// Read implements raster.ImageProvider, so a synthetic Field can be fed directly into extraction.
func (f *Field) Read() (width, height int, pixels []float64, err error) {
	return f.Width, f.Height, f.Pixels, nil
}

/*****************************************************************************************************************/

// RenderPNG rasterizes the field to a PNG-encodable image for visual inspection, scaling
// intensities into the 0-255 range by the frame's brightest pixel.
func (f *Field) RenderPNG(path string) error {
	dc := gg.NewContext(f.Width, f.Height)

	max := 1e-9
	for _, p := range f.Pixels {
		if p > max {
			max = p
		}
	}

	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := f.Pixels[y*f.Width+x] / max * 255
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}

	dc.DrawImage(img, 0, 0)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("synth: failed to save PNG: %w", err)
	}

	return nil
}

/*****************************************************************************************************************/
