/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

// ImageProvider is the external collaborator that yields a rectangular array of floating-point
// intensities plus its width and height. Decoding the image container (FITS, PNG, whatever) is
// explicitly out of scope for the core — see internal/ingest for a concrete adapter over a real
// FITS decoder. A provider signals failure by yielding width = 0.
type ImageProvider interface {
	Read() (width, height int, pixels []float64, err error)
}

/*****************************************************************************************************************/

// SliceProvider is the trivial ImageProvider backed by an already-materialized pixel slice —
// useful for tests and for callers who have decoded the image themselves.
type SliceProvider struct {
	Width, Height int
	Pixels        []float64
}

/*****************************************************************************************************************/

func (p SliceProvider) Read() (int, int, []float64, error) {
	return p.Width, p.Height, p.Pixels, nil
}

/*****************************************************************************************************************/
