package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of QuickShow",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(version, commit))
		},
	}
}

func versionString(version, commit string) string {
	out := fmt.Sprintf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		out += fmt.Sprintf(" (%s)", commit)
	}
	return out
}
