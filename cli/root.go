package cli

import (
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "appo",
		Short: "Application instance info service",
	}

	root.AddCommand(
		ServeCmd(),
	)

	return root
}
