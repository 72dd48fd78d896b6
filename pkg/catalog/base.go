/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package catalog ingests star catalog rows from CSV files or remote TAP services (GAIA,
// SIMBAD) and converts them into the Star records the triangle index is built from.
package catalog

/*****************************************************************************************************************/

import (
	"errors"

	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/star"
)

/*****************************************************************************************************************/

type Kind int

/*****************************************************************************************************************/

const (
	GAIA Kind = iota
	SIMBAD
)

/*****************************************************************************************************************/

// Row is a single catalog entry prior to conversion to a star.Star unit direction.
type Row struct {
	ID        int
	RA        float64 // degrees
	Dec       float64 // degrees
	Magnitude float64
}

/*****************************************************************************************************************/

// Provider produces catalog rows for ingestion. CSVProvider and the gorm-backed SQLite Store
// implement it; the GAIA and SIMBAD TAP clients do not, and return their rows from
// PerformRadialSearch instead.
type Provider interface {
	Rows() ([]Row, error)
}

/*****************************************************************************************************************/

// ErrNoRows is returned by Ingest when a provider yields nothing to index.
var ErrNoRows = errors.New("catalog: provider returned zero rows")

/*****************************************************************************************************************/

// deduplicationRadiusRadians is the angular separation below which two rows are treated as the
// same physical star. It's set well below any plausible centroiding error (a few arcseconds) so
// it only ever merges true cross-catalog duplicates, never two genuinely distinct close stars.
const deduplicationRadiusRadians = 1.0 / 3600 * (3.141592653589793 / 180)

/*****************************************************************************************************************/

// Ingest reads every row from the provider, discards anything fainter than maxVmag, converts the
// survivors into unit-vector Star records, and deduplicates rows the same physical star produced
// more than once — which a radial search spanning both GAIA and SIMBAD, or a generous search
// radius against either on its own, routinely does.
func Ingest(provider Provider, maxVmag float64) ([]star.Star, error) {
	rows, err := provider.Rows()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	stars := make([]star.Star, 0, len(rows))

	for _, r := range rows {
		if r.Magnitude > maxVmag {
			continue
		}

		stars = append(stars, star.NewFromEquatorial(r.ID, r.RA, r.Dec, r.Magnitude))
	}

	if len(stars) == 0 {
		return stars, nil
	}

	return Deduplicate(stars, deduplicationRadiusRadians)
}

/*****************************************************************************************************************/

// Service dispatches a radial search against a remote TAP catalog, returning rows within radius
// (degrees) of center and brighter than threshold. Limit caps the row count of a SIMBAD query;
// GAIA queries are not capped.
type Service struct {
	Kind  Kind
	Limit int
}

/*****************************************************************************************************************/

func NewService(kind Kind, limit int) *Service {
	return &Service{Kind: kind, Limit: limit}
}

/*****************************************************************************************************************/

func (s *Service) PerformRadialSearch(eq astrometry.ICRSEquatorialCoordinate, radius, threshold float64) ([]Row, error) {
	switch s.Kind {
	case GAIA:
		client := NewGAIAServiceClient()
		return client.PerformRadialSearch(eq, radius, threshold)
	case SIMBAD:
		client := NewSIMBADServiceClient()
		return client.PerformRadialSearch(eq, radius, s.Limit, threshold)
	default:
		return nil, errors.New("catalog: unsupported catalog kind")
	}
}

/*****************************************************************************************************************/
