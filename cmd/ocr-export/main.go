package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/export"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath  string
		language string
		source   string
	)
	cmd := &cobra.Command{
		Use:          "ocr-export",
		Short:        "Write stored OCR history to an XLSX workbook",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			cfg := common.LoadConfig()
			logger := cfg.Log.NewLogger()

			filter := repo.ResultFilter{LanguageCode: language}
			if source != "" {
				kind := constants.SourceKind(source)
				if err := common.NewValidator().Field("source", kind, common.SourceKind).Err(); err != nil {
					return err
				}
				filter.SourceType = kind
			}
			return exportHistory(cmd.Context(), cfg, filter, outPath, logger)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "f", fmt.Sprintf("ocr-history-%s.xlsx", time.Now().UTC().Format("20060102")), "output file")
	cmd.Flags().StringVarP(&language, "language", "l", "", "only results with this language code")
	cmd.Flags().StringVarP(&source, "source", "s", "", "only results with this source type")
	return cmd
}

func exportHistory(ctx context.Context, cfg *common.Config, filter repo.ResultFilter, outPath string, logger *slog.Logger) error {
	db, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    cfg.Database.MaxConns,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	svc := export.NewService(repo.NewResultRepository(db, logger), logger)
	data, err := svc.ExportHistoryXLSX(ctx, filter)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("export written", "path", outPath, "bytes", len(data))
	return nil
}
