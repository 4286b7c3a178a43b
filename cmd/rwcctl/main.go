// AngelaMos | 2026
// main.go

package main

import (
	"os"

	"github.com/carterperez-dev/rwc-wellness/cmd/rwcctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
