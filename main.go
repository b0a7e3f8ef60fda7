// Worklog - a personal/team time-tracking service and CLI.

package main

import (
	"os"

	"github.com/manav03panchal/worklog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
