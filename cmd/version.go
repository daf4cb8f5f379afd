package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakinahapp/sakinah/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sakinah version",
	RunE:  wrap("version", runVersion),
}

func runVersion(cmd *cobra.Command, _ []string) error {
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "sakinah %s\n", version.Full())
	}
	return nil
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
