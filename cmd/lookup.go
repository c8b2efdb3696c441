package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <business name>",
	Short: "Enrich a single business name and print the record as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return eris.New("lookup: business name is empty")
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		record := env.Pipeline.Run(ctx, name)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(record), "lookup: encode record")
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
