/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package ingest adapts real image containers onto pkg/raster.ImageProvider, so the core
// extraction and matching pipeline never has to know about file formats or camera headers.
package ingest

/*****************************************************************************************************************/

import (
	"fmt"
	"io"

	"github.com/observerly/iris/pkg/fits"

	"github.com/nks676/startracker/internal/utils"
	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/fov"
)

/*****************************************************************************************************************/

// FITSProvider decodes a FITS exposure into the flat []float64 pixel buffer that
// pkg/raster.ImageProvider expects, converting the decoder's native []float32 plane once and
// caching it so repeated Read calls are free.
type FITSProvider struct {
	Image  *fits.FITSImage
	pixels []float64
}

/*****************************************************************************************************************/

// NewFITSProvider reads a FITS exposure from r. bitDepth, blackPoint and adu are forwarded to the
// underlying decoder exactly as the teacher's solver command does for an unsigned exposure.
func NewFITSProvider(r io.Reader, bitDepth int, blackPoint float64, adu int) (*FITSProvider, error) {
	image := fits.NewFITSImage(bitDepth, blackPoint, 0, adu)

	if err := image.Read(r); err != nil {
		return nil, fmt.Errorf("ingest: failed to read FITS exposure: %w", err)
	}

	return &FITSProvider{Image: image}, nil
}

/*****************************************************************************************************************/

// Read implements raster.ImageProvider.
func (p *FITSProvider) Read() (width, height int, pixels []float64, err error) {
	w, err := utils.ExtractImageWidthFromHeaders(p.Image.Header)
	if err != nil {
		return 0, 0, nil, err
	}

	h, err := utils.ExtractImageHeightFromHeaders(p.Image.Header)
	if err != nil {
		return 0, 0, nil, err
	}

	if p.pixels == nil {
		p.pixels = make([]float64, len(p.Image.Data))
		for i, v := range p.Image.Data {
			p.pixels[i] = float64(v)
		}
	}

	return int(w), int(h), p.pixels, nil
}

/*****************************************************************************************************************/

// PlateCenter resolves the approximate pointing of the exposure, preferring the caller's guess
// and falling back to the RA/DEC FITS headers.
func PlateCenter(raGuess, decGuess float32, header fits.FITSHeader) (astrometry.ICRSEquatorialCoordinate, error) {
	ra, err := utils.ResolveOrExtractRAFromHeaders(raGuess, header)
	if err != nil {
		return astrometry.ICRSEquatorialCoordinate{}, err
	}

	dec, err := utils.ResolveOrExtractDecFromHeaders(decGuess, header)
	if err != nil {
		return astrometry.ICRSEquatorialCoordinate{}, err
	}

	return astrometry.ICRSEquatorialCoordinate{RA: float64(ra), Dec: float64(dec)}, nil
}

/*****************************************************************************************************************/

// SearchRadius derives the catalog query radius (in degrees) that comfortably covers the
// exposure's field of view, given its dimensions and pixel scale in degrees/pixel.
func SearchRadius(width, height int, pixelScaleX, pixelScaleY float64) float64 {
	return fov.GetRadialExtent(float64(width), float64(height), fov.PixelScale{X: pixelScaleX, Y: pixelScaleY})
}

/*****************************************************************************************************************/
