package main

import (
	"context"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
	"github.com/joseph-ayodele/scriptsense/internal/ingest"
	"github.com/joseph-ayodele/scriptsense/internal/output"
	"github.com/joseph-ayodele/scriptsense/internal/pipeline"
	"github.com/joseph-ayodele/scriptsense/internal/queue"
	repo "github.com/joseph-ayodele/scriptsense/internal/repository"
)

type runOptions struct {
	store      bool
	camera     bool
	workers    int
	skipHidden bool
}

func newRunCmd(a *app) *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run <file-or-dir>...",
		Short: "Process local files (directories are walked recursively)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), o, args)
		},
	}
	cmd.Flags().BoolVar(&o.store, "store", false, "persist results to the database")
	cmd.Flags().BoolVar(&o.camera, "camera", false, "mark image inputs as camera captures")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "documents processed in parallel (default WORKER_CONCURRENCY)")
	cmd.Flags().BoolVar(&o.skipHidden, "skip-hidden", true, "skip dot files and directories")
	return cmd
}

func (a *app) run(ctx context.Context, o runOptions, paths []string) error {
	var opts []pipeline.Option
	if o.store {
		db, err := a.openDB(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithSink(repo.NewResultRepository(db, a.logger)))
	}
	proc, err := pipeline.Build(a.cfg, nil, a.logger, opts...)
	if err != nil {
		return err
	}

	// One plain file: run inline and print the full result.
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && !info.IsDir() {
			return a.runOne(ctx, proc, o, paths[0])
		}
	}

	workers := o.workers
	if workers <= 0 {
		workers = a.cfg.Queue.Concurrency
	}
	poolOpts := []queue.PoolOption{queue.WithWorkers(workers), queue.WithProcessTimeout(a.cfg.Queue.RunTimeout)}
	if o.store {
		poolOpts = append(poolOpts, queue.WithStore(proc))
	}

	var (
		mu      sync.Mutex
		results []queue.JobResult
	)
	pool := queue.NewPool(proc, func(r queue.JobResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}, a.logger, poolOpts...)

	var loadFailures []ingest.FileError
	for _, p := range paths {
		_, failed, err := ingest.WalkDocuments(ctx, p, a.cfg.OCR.MaxUploadBytes, o.skipHidden, func(doc entity.SubmittedDocument) error {
			markCamera(&doc, o.camera)
			pool.Enqueue(queue.Job{Doc: doc})
			return nil
		})
		loadFailures = append(loadFailures, failed...)
		if err != nil {
			pool.Shutdown(ctx)
			return err
		}
	}
	pool.Shutdown(ctx)

	for _, f := range loadFailures {
		a.logger.Warn("skipped file", "path", f.Path, "error", f.Err)
	}
	return a.out.PrintTable(batchTable(results))
}

func (a *app) runOne(ctx context.Context, proc *pipeline.Processor, o runOptions, path string) error {
	doc, err := ingest.LoadFile(path, a.cfg.OCR.MaxUploadBytes)
	if err != nil {
		return err
	}
	markCamera(&doc, o.camera)

	if o.store {
		stored, err := proc.ProcessAndStore(ctx, doc)
		if err != nil {
			return err
		}
		return a.printView(stored.View())
	}
	res, err := proc.Process(ctx, doc)
	if err != nil {
		return err
	}
	return a.printView(res.View())
}

// printView renders a single result; table mode prints the JSON view since
// boxes do not fit a table.
func (a *app) printView(v entity.ResultView) error {
	return a.out.Print(v)
}

func markCamera(doc *entity.SubmittedDocument, camera bool) {
	if camera && doc.Source == constants.SourceImage {
		doc.Source = constants.SourceCamera
	}
}

func batchTable(results []queue.JobResult) output.TableData {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Job.Doc.FileName != results[j].Job.Doc.FileName {
			return results[i].Job.Doc.FileName < results[j].Job.Doc.FileName
		}
		return results[i].StoredID < results[j].StoredID
	})
	data := output.TableData{Headers: []string{"FILE", "ID", "PAGES", "LANGUAGE", "CONFIDENCE", "TIME", "ERROR"}}
	for _, r := range results {
		id := r.StoredID
		if r.Err != nil {
			data.Rows = append(data.Rows, []string{r.Job.Doc.FileName, id, "", "", "", "", r.Err.Error()})
			continue
		}
		data.Rows = append(data.Rows, []string{
			r.Job.Doc.FileName,
			id,
			strconv.Itoa(r.Result.PageCount),
			r.Result.LanguageName,
			strconv.FormatFloat(r.Result.ConfidenceScore, 'f', 2, 64),
			(time.Duration(r.Result.ProcessingTimeMs) * time.Millisecond).String(),
			"",
		})
	}
	return data
}

func newSubmitCmd(a *app) *cobra.Command {
	var (
		camera   bool
		maxRetry int
	)
	cmd := &cobra.Command{
		Use:   "submit <file>",
		Short: "Stage a file in Redis and enqueue it for ocrd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ingest.LoadFile(args[0], a.cfg.OCR.MaxUploadBytes)
			if err != nil {
				return err
			}
			markCamera(&doc, camera)

			rdb := queue.NewRedisClient(a.cfg.Redis)
			defer rdb.Close()
			client := asynq.NewClient(queue.RedisOpt(a.cfg.Redis))
			defer client.Close()

			sub, err := queue.NewClient(client, queue.NewRedisStager(rdb), *a.cfg, a.logger, queue.WithMaxRetry(maxRetry)).Submit(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return a.out.PrintTable(output.TableData{
				Headers: []string{"REQUEST ID", "TASK ID", "QUEUE"},
				Rows:    [][]string{{sub.RequestID.String(), sub.TaskID, sub.Queue}},
			})
		},
	}
	cmd.Flags().BoolVar(&camera, "camera", false, "mark the image as a camera capture")
	cmd.Flags().IntVar(&maxRetry, "max-retry", 3, "retries for storage failures")
	return cmd
}
