package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"goa.design/clue/log"
	"golang.org/x/sync/errgroup"

	"goa.design/beans/codegen/beangen"
	"goa.design/beans/runtime/telemetry"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Rewrite the generated region of every bean source file",
		Long: `Rewrite the generated region of every bean source file.

Arguments are files, directories searched recursively, or glob patterns.
Without arguments the current directory is searched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getenv)
			if err != nil {
				return err
			}
			check, err := cmd.Flags().GetBool("check")
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}
			return runGenerate(commandContext(cmd), cmd.OutOrStdout(), cfg, args, check)
		},
	}
	cmd.Flags().Bool("check", false, "report files whose generated region is stale without writing them")
	return cmd
}

// report is the outcome of a generate run.
type report struct {
	mu      sync.Mutex
	files   int
	beans   int
	changed []string
	errs    []error
}

func (r *report) add(path string, res *beangen.Result, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files++
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	if res.Bean != nil {
		r.beans++
	}
	if res.Changed {
		r.changed = append(r.changed, path)
	}
}

// runGenerate processes every discovered file with a bounded pool of
// workers. A failing file does not stop the others; all failures are
// returned joined.
func runGenerate(ctx context.Context, out io.Writer, cfg config, args []string, check bool) error {
	ctx = log.With(ctx, log.KV{K: "run", V: uuid.NewString()})
	if cfg.Debug {
		ctx = log.Context(ctx, log.WithDebug())
	}
	files, err := discover(args, cfg.Include, cfg.Exclude)
	if err != nil {
		return err
	}

	tb := telemetry.NewClueBundle()
	gcfg := cfg.generatorConfig()
	gcfg.Logger, gcfg.Metrics, gcfg.Tracer = tb.Logger, tb.Metrics, tb.Tracer
	g := beangen.New(gcfg)

	var (
		rep report
		eg  errgroup.Group
	)
	eg.SetLimit(cfg.Workers)
	for _, path := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := generateFile(ctx, g, path, check)
			rep.add(path, res, err)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	slices.Sort(rep.changed)
	verb := "rewrote"
	if check {
		verb = "stale"
	}
	for _, path := range rep.changed {
		fmt.Fprintf(out, "%s %s\n", verb, path)
	}
	fmt.Fprintf(out, "%d files, %d beans, %d %s\n", rep.files, rep.beans, len(rep.changed), verb)
	tb.Logger.Info(ctx, "generation complete", "files", rep.files, "beans", rep.beans, "changed", len(rep.changed))

	if len(rep.errs) > 0 {
		return errors.Join(rep.errs...)
	}
	if check && len(rep.changed) > 0 {
		return fmt.Errorf("%d files have a stale generated region", len(rep.changed))
	}
	return nil
}

func generateFile(ctx context.Context, g *beangen.Generator, path string, check bool) (*beangen.Result, error) {
	src, err := readSourceFile(path)
	if err != nil {
		return nil, err
	}
	res, err := g.Generate(ctx, path, src.lines)
	if err != nil {
		return nil, err
	}
	if !res.Changed || check {
		return res, nil
	}
	if err := src.write(res.Lines); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	log.Info(ctx, log.KV{K: "msg", V: "rewrote bean"}, log.KV{K: "file", V: path}, log.KV{K: "bean", V: res.Bean.Name})
	return res, nil
}

// commandContext returns the command context, or a background context when
// the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
