package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/beanscan/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.config.ResolverOptions()
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, a.config.Classpath, opts)
			return server.RunStdio()
		},
	}
}
