/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package cli assembles the startracker command tree.
package cli

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"

	"github.com/nks676/startracker/internal/indexer"
	"github.com/nks676/startracker/internal/solver"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "startracker",
	Short: "startracker is a lost-in-space star identifier and attitude solver.",
	Long:  "startracker extracts sources from an astronomical exposure, matches them against a star catalog by triangle geometry, and recovers the camera's attitude via TRIAD.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(solver.SolveCommand)
	rootCommand.AddCommand(indexer.IndexCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
