package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/output"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
	"github.com/joseph-ayodele/scriptsense/internal/retention"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse, inspect and delete stored results",
	}
	cmd.AddCommand(newHistoryListCmd(a), newHistoryGetCmd(a), newHistoryDeleteCmd(a), newHistoryStatsCmd(a), newHistoryPruneCmd(a))
	return cmd
}

func (a *app) results(cmd *cobra.Command) (repo.ResultRepository, error) {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return nil, err
	}
	return repo.NewResultRepository(db, a.logger), nil
}

func parseID(arg string) (uuid.UUID, error) {
	v := common.NewValidator().Field("id", arg, common.UUID)
	if err := v.Err(); err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(arg), nil
}

func newHistoryListCmd(a *app) *cobra.Command {
	var (
		f      repo.ResultFilter
		source string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source != "" {
				if err := common.NewValidator().Field("source", constants.SourceKind(source), common.SourceKind).Err(); err != nil {
					return err
				}
				f.SourceType = constants.SourceKind(source)
			}
			results, err := a.results(cmd)
			if err != nil {
				return err
			}
			page, err := results.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			if err := a.out.PrintTable(historyTable(page)); err != nil {
				return err
			}
			if a.out.Format == output.FormatTable {
				fmt.Fprintf(cmd.ErrOrStderr(), "page %d of %d (%d results)\n", page.Page, page.Pages, page.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.LanguageCode, "language", "l", "", "filter by language code (en, ta, hi, unknown)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "filter by source type (image, camera, pdf)")
	cmd.Flags().IntVar(&f.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.Limit, "limit", repo.DefaultPageSize, "results per page")
	return cmd
}

func historyTable(page repo.ResultPage) output.TableData {
	data := output.TableData{Headers: []string{"ID", "CREATED", "FILE", "SOURCE", "PAGES", "LANGUAGE", "CONFIDENCE"}}
	for _, r := range page.Results {
		data.Rows = append(data.Rows, []string{
			r.ID.String(),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.FileName,
			string(r.SourceType),
			strconv.Itoa(r.PageCount),
			r.LanguageName,
			strconv.FormatFloat(r.ConfidenceScore, 'f', 2, 64),
		})
	}
	return data
}

func newHistoryGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			results, err := a.results(cmd)
			if err != nil {
				return err
			}
			stored, err := results.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printView(stored.View())
		},
	}
}

func newHistoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			results, err := a.results(cmd)
			if err != nil {
				return err
			}
			if err := results.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}

func newHistoryStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize stored results by language and source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := a.results(cmd)
			if err != nil {
				return err
			}
			st, err := results.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.PrintTable(statsTable(st))
		},
	}
}

func statsTable(st repo.Stats) output.TableData {
	data := output.TableData{
		Headers: []string{"METRIC", "VALUE"},
		Rows: [][]string{
			{"total", strconv.Itoa(st.Total)},
			{"average confidence", strconv.FormatFloat(st.AverageConfidence, 'f', 3, 64)},
		},
	}
	add := func(prefix string, m map[string]int) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			data.Rows = append(data.Rows, []string{prefix + k, strconv.Itoa(m[k])})
		}
	}
	add("language: ", st.ByLanguage)
	add("source: ", st.BySource)
	return data
}

func newHistoryPruneCmd(a *app) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete results older than a given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				olderThan = a.cfg.Retention.MaxAge
			}
			if olderThan <= 0 {
				return fmt.Errorf("--older-than or RESULT_RETENTION is required")
			}
			results, err := a.results(cmd)
			if err != nil {
				return err
			}
			pruner, err := retention.New(results, olderThan, a.cfg.Retention.Schedule, a.logger)
			if err != nil {
				return err
			}
			n, err := pruner.PruneOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d results\n", n)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "age cutoff, e.g. 720h (default RESULT_RETENTION)")
	return cmd
}
