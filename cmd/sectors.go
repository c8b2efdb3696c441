package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/registry-enrich/internal/resolve"
)

var sectorCmd = &cobra.Command{
	Use:   "sector <sic description>",
	Short: "Classify a SIC description into a business sector",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		cmd.Println(resolve.ClassifySector(description))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectorCmd)
}
