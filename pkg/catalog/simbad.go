/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"
	"time"

	"github.com/nks676/startracker/pkg/adql"
	"github.com/nks676/startracker/pkg/astrometry"
)

/*****************************************************************************************************************/

type SIMBADQuery struct {
	RA        float64
	Dec       float64
	Radius    float64
	Limit     int
	Threshold float64
}

/*****************************************************************************************************************/

type SIMBADServiceClient struct {
	*adql.TapClient
	Query SIMBADQuery
}

/*****************************************************************************************************************/

func NewSIMBADServiceClient() *SIMBADServiceClient {
	u := url.URL{
		Scheme: "https",
		Host:   "simbad.unistra.fr",
		Path:   "/simbad/sim-tap/sync",
	}

	headers := map[string]string{
		"Content-Type":   "application/x-www-form-urlencoded",
		"X-Requested-By": "startracker",
	}

	client := adql.NewTapClient(u, 60*time.Second, headers)

	return &SIMBADServiceClient{
		TapClient: client,
		Query:     SIMBADQuery{},
	}
}

/*****************************************************************************************************************/

const simbadRecord = "basic.oid AS uid, basic.main_id AS designation, basic.ra AS ra, basic.dec AS dec, allfluxes.G AS magnitude"

/*****************************************************************************************************************/

// simbadRowID hashes the SIMBAD object identifier into a stable integer, since SIMBAD's oid is
// not itself guaranteed small and the triangle index keys stars by int ID.
func simbadRowID(oid string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(oid))
	return int(h.Sum32() & 0x7fffffff)
}

/*****************************************************************************************************************/

func (s *SIMBADServiceClient) PerformRadialSearch(eq astrometry.ICRSEquatorialCoordinate, radius float64, limit int, threshold float64) ([]Row, error) {
	// @see https://simbad.u-strasbg.fr/Pages/guide/sim-q.htx
	const simbadADQLTemplate = `
		SELECT TOP {{.Limit}} {{.Record}}
		FROM basic
		LEFT JOIN allfluxes
			ON basic.oid = allfluxes.oidref
		WHERE CONTAINS(
			POINT('ICRS', basic.ra, basic.dec),
			CIRCLE('ICRS', {{.RA}}, {{.Dec}}, {{.Radius}})
		) = 1 AND allfluxes.G < {{.Threshold}}
		ORDER BY magnitude ASC;
	`

	s.Query.RA = eq.RA
	s.Query.Dec = eq.Dec
	s.Query.Radius = radius
	s.Query.Limit = limit
	s.Query.Threshold = threshold

	adqlQuery, err := s.BuildADQLQuery(simbadADQLTemplate, struct {
		Record    string
		RA        float64
		Dec       float64
		Radius    float64
		Limit     int
		Threshold float64
	}{
		Record:    simbadRecord,
		RA:        s.Query.RA,
		Dec:       s.Query.Dec,
		Radius:    s.Query.Radius,
		Limit:     s.Query.Limit,
		Threshold: s.Query.Threshold,
	})
	if err != nil {
		return nil, err
	}

	tapResponse, err := s.ExecuteADQLQuery(adqlQuery)
	if err != nil {
		return nil, err
	}

	toFloat64 := func(val interface{}) (float64, bool) {
		v, ok := val.(float64)
		return v, ok
	}

	var rows []Row

	for _, record := range tapResponse.Data {
		if len(record) < 5 {
			continue
		}

		oid := strings.Join(strings.Fields(fmt.Sprintf("%v", record[0])), " ")

		ra, ok := toFloat64(record[2])
		if !ok {
			continue
		}

		dec, ok := toFloat64(record[3])
		if !ok {
			continue
		}

		mag, ok := toFloat64(record[4])
		if !ok {
			continue
		}

		rows = append(rows, Row{ID: simbadRowID(oid), RA: ra, Dec: dec, Magnitude: mag})
	}

	return rows, nil
}

/*****************************************************************************************************************/
