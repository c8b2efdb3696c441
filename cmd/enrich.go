package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/registry-enrich/internal/model"
	"github.com/sells-group/registry-enrich/internal/pipeline"
	"github.com/sells-group/registry-enrich/internal/sheet"
	"github.com/sells-group/registry-enrich/internal/store"
)

var (
	enrichInput  string
	enrichOutput string
	enrichLimit  int
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Batch enrich business names from a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		input, err := sheet.Load(enrichInput)
		if err != nil {
			return eris.Wrap(err, "load input")
		}

		names := input.Names
		if enrichLimit > 0 && len(names) > enrichLimit {
			names = names[:enrichLimit]
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		batch, err := env.Store.CreateBatch(ctx, enrichInput, len(names))
		if err != nil {
			return eris.Wrap(err, "create batch")
		}
		zap.L().Info("batch registered", zap.String("batch_id", batch.ID))

		checkpointPath := sheet.CheckpointPath(enrichOutput)
		checkpoint := func(records []model.CanonicalRecord) error {
			return sheet.WriteRecords(checkpointPath, input.Columns, records)
		}

		records, runErr := env.Pipeline.RunBatch(ctx, names, pipeline.BatchOptions{
			Concurrency:     cfg.Batch.MaxConcurrentCompanies,
			CheckpointEvery: cfg.Batch.CheckpointEvery,
		}, checkpoint)

		if err := sheet.WriteRecords(enrichOutput, input.Columns, records); err != nil {
			return eris.Wrap(err, "write output")
		}
		_ = os.Remove(checkpointPath)

		for _, record := range records {
			if _, err := env.Store.SaveRecord(ctx, batch.ID, record); err != nil {
				zap.L().Warn("store record failed",
					zap.String("company", record.CompanyName),
					zap.Error(err),
				)
			}
		}

		status := store.BatchStatusComplete
		if runErr != nil {
			status = store.BatchStatusFailed
		}
		if err := env.Store.FinishBatch(ctx, batch.ID, len(records), status); err != nil {
			zap.L().Warn("finish batch failed", zap.Error(err))
		}

		zap.L().Info("enrichment written",
			zap.String("output", enrichOutput),
			zap.Int("records", len(records)),
		)
		return runErr
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "input .csv or .xlsx with a Business Name column (required)")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "enriched.xlsx", "output workbook path")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "max number of companies to process (0 = all)")
	_ = enrichCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(enrichCmd)
}
