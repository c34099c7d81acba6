package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkArtifactCmd = &cobra.Command{
	Use:   "check-artifact [path]",
	Short: "Validate a model artifact against the feature schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			artifactPath = args[0]
		}
		_, screener, log, err := newScreener()
		if err != nil {
			return err
		}
		defer log.Sync()

		schema := screener.Model.Schema
		fmt.Fprintf(cmd.OutOrStdout(), "ok: schema v%d, %d features, %d skills, roles %v\n",
			schema.Version, schema.Dim, len(schema.Vocabulary), screener.Model.Roles.BaseRoles())
		return nil
	},
}
