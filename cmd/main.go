/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import "github.com/nks676/startracker/internal/cli"

/*****************************************************************************************************************/

func main() {
	cli.Execute()
}

/*****************************************************************************************************************/
