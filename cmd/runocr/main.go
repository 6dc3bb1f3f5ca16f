package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/output"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
)

// app is the state shared by every subcommand.
type app struct {
	envFile   string
	outputFmt string

	cfg    *common.Config
	logger *slog.Logger
	out    *output.Formatter
	db     *repo.DB
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	root := newRootCmd(a)
	err := root.ExecuteContext(ctx)
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "runocr",
		Short: "Run documents through the OCR pipeline and inspect stored results",
		Long: `runocr runs local images and PDFs through the OCR pipeline.

  runocr run scan.pdf            Process one file and print the result
  runocr run --store ./inbox     Process a directory and store every result
  runocr submit photo.jpg        Stage and enqueue a file for ocrd
  runocr history list -l ta      Browse stored results`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "optional dotenv file")
	root.PersistentFlags().StringVarP(&a.outputFmt, "output", "o", "table", "output format: table, json, yaml")

	root.AddCommand(newRunCmd(a), newSubmitCmd(a), newHistoryCmd(a), newMigrateCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}
	a.cfg = common.LoadConfig()
	// Logs go to stderr so stdout stays parseable.
	opts := &slog.HandlerOptions{Level: a.cfg.Log.SlogLevel()}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(a.logger)

	format, err := output.ParseFormat(a.outputFmt)
	if err != nil {
		return err
	}
	a.out = output.NewFormatter(format, cmd.OutOrStdout())
	return a.cfg.Validate()
}

// openDB opens and migrates the result store once per invocation.
func (a *app) openDB(ctx context.Context) (*repo.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := repo.Open(ctx, repo.Config{
		DSN:              a.cfg.Database.DSN,
		MaxConns:         a.cfg.Database.MaxConns,
		MinConns:         a.cfg.Database.MinConns,
		MaxConnLifetime:  a.cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  a.cfg.Database.MaxConnIdleTime,
		DialTimeout:      a.cfg.Database.DialTimeout,
		StatementTimeout: a.cfg.Database.StatementTimeout,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the result table and check database health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			if err := db.HealthCheck(cmd.Context(), a.cfg.Database.DialTimeout); err != nil {
				return fmt.Errorf("DB health: FAIL (%w)", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "DB health: OK (%s)\n", db.Dialect())
			return nil
		},
	}
}
