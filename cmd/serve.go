package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/registry-enrich/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a read-only server over stored enrichment records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		mux.HandleFunc("GET /records", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			filter := store.RecordFilter{
				BatchID: q.Get("batch_id"),
				Company: q.Get("company"),
			}
			if limit := q.Get("limit"); limit != "" {
				n, err := strconv.Atoi(limit)
				if err != nil {
					http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
					return
				}
				filter.Limit = n
			}
			if offset := q.Get("offset"); offset != "" {
				n, err := strconv.Atoi(offset)
				if err != nil {
					http.Error(w, `{"error":"invalid offset"}`, http.StatusBadRequest)
					return
				}
				filter.Offset = n
			}

			records, err := env.Store.ListRecords(r.Context(), filter)
			if err != nil {
				zap.L().Error("list records failed", zap.Error(err))
				http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"records": records,
				"count":   len(records),
			})
		})

		mux.HandleFunc("GET /batches/{id}", func(w http.ResponseWriter, r *http.Request) {
			batch, err := env.Store.GetBatch(r.Context(), r.PathValue("id"))
			if err != nil {
				http.Error(w, `{"error":"batch not found"}`, http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(batch)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
