// Command netplasctl runs maintenance tasks against the inventory database.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "netplasctl",
		Short:        "Maintenance tasks for the netplas inventory database",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newResetPasswordCommand())
	root.AddCommand(newCreateUserCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
