/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"text/template"

	"github.com/nks676/startracker/pkg/astrometry"
)

/*****************************************************************************************************************/

type GAIAQuery struct {
	RA     float64 // right ascension (in degrees)
	Dec    float64 // declination (in degrees)
	Radius float64 // search radius (in degrees)
	Limit  float64 // limiting magnitude
}

/*****************************************************************************************************************/

type GAIAServiceClient struct {
	URI   string
	Query GAIAQuery
}

/*****************************************************************************************************************/

// NewGAIAServiceClient targets Gaia DR3's TAP endpoint: five-parameter astrometry for ~1.46
// billion sources down to G = 21.
func NewGAIAServiceClient() *GAIAServiceClient {
	return &GAIAServiceClient{
		URI:   "https://gea.esac.esa.int/tap-server/tap/sync",
		Query: GAIAQuery{},
	}
}

/*****************************************************************************************************************/

const gaiaRecord = `source_id, ra, dec, phot_g_mean_mag`

/*****************************************************************************************************************/

func (g *GAIAServiceClient) Build() (string, error) {
	// Only gold-standard photometry (phot_proc_mode = '0') is acceptable for an identification catalog.
	// @see https://gea.esac.esa.int/archive/documentation/GDR3/Gaia_archive/chap_datamodel/
	const queryTemplate = `
		SELECT {{.Record}}
		FROM gaiadr3.gaia_source
		WHERE CONTAINS(
			POINT('ICRS', ra, dec),
			CIRCLE('ICRS', {{.RA}}, {{.Dec}}, {{.Radius}})
		) = 1 AND phot_g_mean_mag < {{.Limit}} AND phot_proc_mode = '0'
	`

	tmpl, err := template.New("adql").Parse(queryTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Record string
		RA     float64
		Dec    float64
		Radius float64
		Limit  float64
	}{
		Record: gaiaRecord,
		RA:     g.Query.RA,
		Dec:    g.Query.Dec,
		Radius: g.Query.Radius,
		Limit:  g.Query.Limit,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

/*****************************************************************************************************************/

func (g *GAIAServiceClient) PerformRadialSearch(eq astrometry.ICRSEquatorialCoordinate, radius, limit float64) ([]Row, error) {
	g.Query.RA = eq.RA
	g.Query.Dec = eq.Dec
	g.Query.Radius = radius
	g.Query.Limit = limit

	adqlQuery, err := g.Build()
	if err != nil {
		return nil, err
	}

	formData := url.Values{}
	formData.Set("REQUEST", "doQuery")
	formData.Set("LANG", "ADQL")
	formData.Set("FORMAT", "csv")
	formData.Set("QUERY", adqlQuery)

	resp, err := http.PostForm(g.URI, formData)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GAIA TAP query failed: %s", string(bodyBytes))
	}

	records, err := csv.NewReader(bytes.NewReader(bodyBytes)).ReadAll()
	if err != nil {
		return nil, err
	}

	var rows []Row

	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}

		ra, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		dec, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		mag, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		rows = append(rows, Row{ID: id, RA: ra, Dec: dec, Magnitude: mag})
	}

	return rows, nil
}

/*****************************************************************************************************************/
