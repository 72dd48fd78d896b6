/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package catalog

/*****************************************************************************************************************/

import (
	"encoding/csv"
	"io"
	"strconv"
)

/*****************************************************************************************************************/

// CSVProvider reads Hipparcos-style catalog rows from a comma-separated file: column 1 is the
// catalog ID, column 5 the visual magnitude, columns 8 and 9 right ascension and declination in
// degrees. The header row is always skipped. Malformed or incomplete rows are silently dropped,
// matching the ingest tolerance of the reference catalog reader this mirrors.
type CSVProvider struct {
	Reader io.Reader
}

/*****************************************************************************************************************/

const (
	csvMinColumns = 10
	csvColID      = 1
	csvColVmag    = 5
	csvColRA      = 8
	csvColDec     = 9
)

/*****************************************************************************************************************/

func (p CSVProvider) Rows() ([]Row, error) {
	r := csv.NewReader(p.Reader)
	r.FieldsPerRecord = -1

	// Skip the header line.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var rows []Row

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) < csvMinColumns {
			continue
		}

		if record[csvColVmag] == "" {
			continue
		}

		vmag, err := strconv.ParseFloat(record[csvColVmag], 64)
		if err != nil {
			continue
		}

		id, err := strconv.Atoi(record[csvColID])
		if err != nil {
			continue
		}

		ra, err := strconv.ParseFloat(record[csvColRA], 64)
		if err != nil {
			continue
		}

		dec, err := strconv.ParseFloat(record[csvColDec], 64)
		if err != nil {
			continue
		}

		rows = append(rows, Row{ID: id, RA: ra, Dec: dec, Magnitude: vmag})
	}

	return rows, nil
}

/*****************************************************************************************************************/
