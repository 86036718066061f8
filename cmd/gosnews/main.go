// Command gosnews runs the news site: the HTTP server with its background
// workers, the database migrations and a smoke check of a running server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "gosnews",
		Short:        "Multilingual regional news site",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newSmokeCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
