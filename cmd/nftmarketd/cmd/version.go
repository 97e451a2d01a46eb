package cmd

import (
	"github.com/spf13/cobra"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/version"
)

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the application binary version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoHost: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return utilcli.PrintOutput(cmd, version.Get())
		},
	}
}
