/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package solver wires a cobra command for the end-to-end lost-in-space solve: decode a FITS
// exposure, fetch a GAIA catalog (or load a cached one) covering its approximate pointing, and
// print the recovered attitude quaternion and boresight.
package solver

/*****************************************************************************************************************/

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/observerly/sidera/pkg/humanize"
	"github.com/spf13/cobra"

	"github.com/nks676/startracker/internal/config"
	"github.com/nks676/startracker/internal/ingest"
	"github.com/nks676/startracker/pkg/astrometry"
	"github.com/nks676/startracker/pkg/catalog"
	"github.com/nks676/startracker/pkg/solve"
)

/*****************************************************************************************************************/

var (
	InputFileLocation string
	RA                float32
	Dec               float32
	PixelScaleX       float64
	PixelScaleY       float64
	CatalogStorePath  string
	ToleranceRadians  float64
)

/*****************************************************************************************************************/

// getFilePathStem returns the input filepath without its extension, e.g. "./samples/astrometry"
// from "./samples/astrometry.fits", for deriving the solve's output file name.
func getFilePathStem(path string) string {
	directory := filepath.Dir(path)
	base := filepath.Base(path)
	extension := filepath.Ext(base)
	name := strings.TrimSuffix(base, extension)
	return filepath.Join(directory, name)
}

/*****************************************************************************************************************/

var SolveCommand = &cobra.Command{
	Use:   "solve",
	Short: "solve",
	Long:  "solve a lost-in-space attitude from a FITS exposure",
	Run: func(cmd *cobra.Command, args []string) {
		params := RunSolverParams{
			InputFileLocation: InputFileLocation,
			RA:                RA,
			Dec:               Dec,
			PixelScaleX:       PixelScaleX,
			PixelScaleY:       PixelScaleY,
			CatalogStorePath:  CatalogStorePath,
			ToleranceRadians:  ToleranceRadians,
		}

		if err := RunSolver(params); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

/*****************************************************************************************************************/

func init() {
	SolveCommand.Flags().StringVarP(&InputFileLocation, "input", "i", "", "The input FITS file location")
	SolveCommand.MarkFlagRequired("input")

	SolveCommand.Flags().Float32VarP(&RA, "ra", "", float32(math.NaN()), "Approximate right ascension of the exposure (degrees)")
	SolveCommand.Flags().Float32VarP(&Dec, "dec", "", float32(math.NaN()), "Approximate declination of the exposure (degrees)")

	SolveCommand.Flags().Float64VarP(&PixelScaleX, "pixel-scale-x", "x", 0, "Pixel scale in the x-axis (degrees/pixel)")
	SolveCommand.MarkFlagRequired("pixel-scale-x")

	SolveCommand.Flags().Float64VarP(&PixelScaleY, "pixel-scale-y", "y", 0, "Pixel scale in the y-axis (degrees/pixel)")
	SolveCommand.MarkFlagRequired("pixel-scale-y")

	SolveCommand.Flags().StringVarP(&CatalogStorePath, "catalog-store", "c", "", "Path to a SQLite catalog cache; fetched from GAIA if empty or missing")

	SolveCommand.Flags().Float64VarP(&ToleranceRadians, "tolerance", "t", 0, "Matcher tolerance in radians; the configured default is used if zero")
}

/*****************************************************************************************************************/

// quaternionOutput is the JSON-friendly shape of a quaternion.Quaternion, keeping pkg/quaternion
// free of encoding concerns.
type quaternionOutput struct {
	W, X, Y, Z float64
}

/*****************************************************************************************************************/

type RunSolverParams struct {
	InputFileLocation string
	RA                float32
	Dec               float32
	PixelScaleX       float64
	PixelScaleY       float64
	CatalogStorePath  string
	ToleranceRadians  float64
}

/*****************************************************************************************************************/

func RunSolver(params RunSolverParams) error {
	file, err := os.Open(params.InputFileLocation)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	fmt.Println("Input File Location:", params.InputFileLocation)

	provider, err := ingest.NewFITSProvider(file, 16, 0, 65535)
	if err != nil {
		return err
	}

	eq, err := ingest.PlateCenter(params.RA, params.Dec, provider.Image.Header)
	if err != nil {
		return fmt.Errorf("failed to resolve the plate center: %w", err)
	}

	fmt.Printf("Plate Center: RA %.4f° Dec %.4f°\n", eq.RA, eq.Dec)

	width, height, _, err := provider.Read()
	if err != nil {
		return err
	}

	radius := ingest.SearchRadius(width, height, params.PixelScaleX, params.PixelScaleY)

	fmt.Printf("Search Radius: %.4f°\n", radius)

	rows, err := fetchCatalog(eq, radius, params.CatalogStorePath)
	if err != nil {
		return fmt.Errorf("failed to obtain a catalog covering the field: %w", err)
	}

	fmt.Printf("Catalog Rows: %d\n", len(rows))

	cfg := config.Default()
	if params.ToleranceRadians > 0 {
		cfg.ToleranceRadians = params.ToleranceRadians
	}

	result, err := solve.Solve(provider, rows, solve.Params{
		Config:      cfg,
		PixelScaleX: params.PixelScaleX,
		PixelScaleY: params.PixelScaleY,
	})
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Printf(
		"Attitude Quaternion: w=%.6f x=%.6f y=%.6f z=%.6f\n",
		result.Quaternion.W, result.Quaternion.X, result.Quaternion.Y, result.Quaternion.Z,
	)
	fmt.Printf(
		"Boresight: %s %s (RA %.6f° Dec %.6f°)\n",
		humanize.FormatDecimalToDMS(result.Boresight.RA, "%s%d %d %.2f"),
		humanize.FormatDecimalToDMS(result.Boresight.Dec, "%s%d %d %.2f"),
		result.Boresight.RA, result.Boresight.Dec,
	)

	outputFile, err := os.Create(fmt.Sprintf("%s.solution.json", getFilePathStem(params.InputFileLocation)))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	encoder := json.NewEncoder(outputFile)
	encoder.SetIndent("", "\t")

	solution := struct {
		FrameID    string                               `json:"frameId"`
		Quaternion quaternionOutput                     `json:"quaternion"`
		Boresight  astrometry.ICRSEquatorialCoordinate  `json:"boresight"`
		Clusters   int                                  `json:"clusters"`
	}{
		FrameID:    result.FrameID.String(),
		Quaternion: quaternionOutput{result.Quaternion.W, result.Quaternion.X, result.Quaternion.Y, result.Quaternion.Z},
		Boresight:  result.Boresight,
		Clusters:   len(result.Image.Clusters),
	}

	if err := encoder.Encode(solution); err != nil {
		return fmt.Errorf("failed to write solution: %w", err)
	}

	fmt.Printf("Solution written to: %s\n", outputFile.Name())

	return nil
}

/*****************************************************************************************************************/

// fetchCatalog loads rows from the SQLite cache at storePath when it holds any rows at all,
// otherwise performs a fresh GAIA radial search and, if storePath is set, persists the results
// for next time.
func fetchCatalog(eq astrometry.ICRSEquatorialCoordinate, radius float64, storePath string) ([]catalog.Row, error) {
	if storePath != "" {
		store, err := catalog.OpenStore(storePath)
		if err == nil {
			defer store.Close()

			if count, err := store.Count(); err == nil && count > 0 {
				return store.Rows()
			}
		}
	}

	service := catalog.NewService(catalog.GAIA, 500)

	rows, err := service.PerformRadialSearch(eq, radius, 16)
	if err != nil {
		return nil, err
	}

	if storePath != "" {
		if store, err := catalog.OpenStore(storePath); err == nil {
			defer store.Close()
			_ = store.Save(rows)
		}
	}

	return rows, nil
}

/*****************************************************************************************************************/
