/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package indexer wires a cobra command that builds and persists a triangle index over a star
// catalog: ingest rows (from a CSV file or a GAIA/SIMBAD radial search), cache them, enumerate
// every admissible triangle, and cache that too. The solve command reads only the catalog cache
// and rebuilds the triangle index itself.
package indexer

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/catalog"
	"github.com/nks676/startracker/pkg/triangle"
)

/*****************************************************************************************************************/

var (
	CSVPath          string
	CatalogStorePath string
	TriangleStorePath string
	CatalogKind       string
	RA                float64
	Dec               float64
	Radius            float64
	MaxVmag           float64
	MaxFOVDegrees     float64
)

/*****************************************************************************************************************/

var IndexCommand = &cobra.Command{
	Use:   "indexer",
	Short: "indexer",
	Long:  "build and persist a triangle index over a star catalog",
	Run: func(cmd *cobra.Command, args []string) {
		params := RunIndexerParams{
			CSVPath:           CSVPath,
			CatalogStorePath:  CatalogStorePath,
			TriangleStorePath: TriangleStorePath,
			CatalogKind:       CatalogKind,
			RA:                RA,
			Dec:               Dec,
			Radius:            Radius,
			MaxVmag:           MaxVmag,
			MaxFOVDegrees:     MaxFOVDegrees,
		}

		if err := RunIndexer(params); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

/*****************************************************************************************************************/

func init() {
	IndexCommand.Flags().StringVarP(&CSVPath, "csv", "f", "", "A Hipparcos-layout CSV catalog file to ingest instead of a remote radial search")

	IndexCommand.Flags().StringVarP(&CatalogStorePath, "catalog-store", "c", "catalog.sqlite", "Path to the SQLite catalog cache to write")
	IndexCommand.Flags().StringVarP(&TriangleStorePath, "triangle-store", "t", "triangles.sqlite", "Path to the SQLite triangle index cache to write")

	IndexCommand.Flags().StringVarP(&CatalogKind, "catalog", "k", "GAIA", "Remote catalog to query when --csv is not set (GAIA or SIMBAD)")

	IndexCommand.Flags().Float64VarP(&RA, "ra", "", math.NaN(), "Right ascension of the radial search center (degrees)")
	IndexCommand.Flags().Float64VarP(&Dec, "dec", "", math.NaN(), "Declination of the radial search center (degrees)")
	IndexCommand.Flags().Float64VarP(&Radius, "radius", "r", 10, "Radial search radius (degrees)")

	IndexCommand.Flags().Float64VarP(&MaxVmag, "max-vmag", "", 10, "Visual magnitude cutoff; fainter rows are dropped")
	IndexCommand.Flags().Float64VarP(&MaxFOVDegrees, "max-fov", "", 10, "Maximum pairwise arc, in degrees, admitted into the triangle index")
}

/*****************************************************************************************************************/

type RunIndexerParams struct {
	CSVPath           string
	CatalogStorePath  string
	TriangleStorePath string
	CatalogKind       string
	RA, Dec           float64
	Radius            float64
	MaxVmag           float64
	MaxFOVDegrees     float64
}

/*****************************************************************************************************************/

func resolveProvider(params RunIndexerParams) (catalog.Provider, error) {
	if params.CSVPath != "" {
		file, err := os.Open(params.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV catalog: %w", err)
		}

		return catalog.CSVProvider{Reader: file}, nil
	}

	if math.IsNaN(params.RA) || math.IsNaN(params.Dec) {
		return nil, fmt.Errorf("--ra and --dec are required when --csv is not set")
	}

	var kind catalog.Kind
	switch strings.ToUpper(params.CatalogKind) {
	case "SIMBAD":
		kind = catalog.SIMBAD
	default:
		kind = catalog.GAIA
	}

	service := catalog.NewService(kind, 2000)

	eq := astrometry.ICRSEquatorialCoordinate{RA: params.RA, Dec: params.Dec}

	rows, err := service.PerformRadialSearch(eq, params.Radius, params.MaxVmag)
	if err != nil {
		return nil, fmt.Errorf("radial search failed: %w", err)
	}

	return rowProvider(rows), nil
}

/*****************************************************************************************************************/

type rowProvider []catalog.Row

func (p rowProvider) Rows() ([]catalog.Row, error) { return []catalog.Row(p), nil }

/*****************************************************************************************************************/

func RunIndexer(params RunIndexerParams) error {
	provider, err := resolveProvider(params)
	if err != nil {
		return err
	}

	stars, err := catalog.Ingest(provider, params.MaxVmag)
	if err != nil {
		return fmt.Errorf("failed to ingest catalog: %w", err)
	}

	fmt.Printf("Ingested %d stars\n", len(stars))

	catalogStore, err := catalog.OpenStore(params.CatalogStorePath)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer catalogStore.Close()

	rows := make([]catalog.Row, len(stars))
	for i, s := range stars {
		eq := astrometry.FromVector3(s.Direction)
		rows[i] = catalog.Row{ID: s.ID, RA: eq.RA, Dec: eq.Dec, Magnitude: s.Magnitude}
	}

	if err := catalogStore.Save(rows); err != nil {
		return fmt.Errorf("failed to persist catalog rows: %w", err)
	}

	fmt.Printf("Catalog cached to %s\n", params.CatalogStorePath)

	maxFOVRadians := params.MaxFOVDegrees * math.Pi / 180

	index, err := triangle.Build(stars, maxFOVRadians)
	if err != nil {
		return fmt.Errorf("failed to build triangle index: %w", err)
	}

	fmt.Printf("Built %d triangles\n", len(index.Triangles))

	triangleStore, err := triangle.OpenStore(params.TriangleStorePath)
	if err != nil {
		return fmt.Errorf("failed to open triangle store: %w", err)
	}
	defer triangleStore.Close()

	if err := triangleStore.Save(index); err != nil {
		return fmt.Errorf("failed to persist triangle index: %w", err)
	}

	fmt.Printf("Triangle index cached to %s\n", params.TriangleStorePath)

	return nil
}

/*****************************************************************************************************************/
