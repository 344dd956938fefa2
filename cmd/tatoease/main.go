package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/config"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/db"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/ease"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/export"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/logging"
)

const usage = `
Usage:
- To print all languages:
    tatoease langs <sentences.csv path>
- To print word frequencies of a language:
    tatoease freq <lang> <sentences.csv path>
- To create translations to stdout:
    tatoease ease <lang from> <lang to> <sentences.csv path> <links.csv path>

Flags:
    -config <file.yaml>  optional configuration file
    -db <file.sqlite>    also store freq/ease results in a SQLite database`

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tatoease", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFlag := fs.String("config", "", "Path to YAML configuration file")
	dbFlag := fs.String("db", "", "Path to SQLite export database")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	logger := logging.New(stderr, cfg.Log)

	out := bufio.NewWriter(stdout)
	app := &app{
		ctx:    ctx,
		out:    out,
		diag:   stderr,
		dbPath: *dbFlag,
		logger: logger,
		src:    corpus.Source{MaxLineBytes: cfg.MaxLineBytes},
	}
	app.pipeline = ease.NewPipeline(app.src, cfg.SegmentedLangs, logger)

	err = app.dispatch(fs.Args())
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("write output: %w", ferr)
	}
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usage)
		return 1
	case errors.Is(err, context.Canceled):
		logger.Error("interrupted")
		return 1
	case err != nil:
		logger.Error("run failed", slog.Any("error", err))
		return 1
	}
	return 0
}

type app struct {
	ctx      context.Context
	out      *bufio.Writer
	diag     io.Writer
	dbPath   string
	logger   *slog.Logger
	src      corpus.Source
	pipeline *ease.Pipeline
}

func (a *app) dispatch(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch {
	case args[0] == "langs" && len(args) == 2:
		return a.langs(args[1])
	case args[0] == "freq" && len(args) == 3:
		return a.freq(args[1], args[2])
	case args[0] == "ease" && len(args) == 5:
		return a.ease(ease.Request{From: args[1], To: args[2], CorpusPath: args[3], LinkPath: args[4]})
	default:
		return errUsage
	}
}

func (a *app) langs(path string) error {
	a.logger.Info("listing languages", slog.String("corpus", path))
	langs, total, err := a.src.Languages(a.ctx, path)
	if err != nil {
		return err
	}
	for _, l := range langs {
		fmt.Fprintln(a.out, l)
	}
	fmt.Fprintf(a.diag, "%d languages in %d sentences\n", len(langs), total)
	return nil
}

func (a *app) freq(lang, path string) error {
	entries, err := a.pipeline.Frequencies(a.ctx, path, lang)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%d\t%s\n", e.Count, e.Word)
	}
	if a.dbPath == "" {
		return nil
	}
	conn, err := db.Open(a.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()
	a.logger.Info("exporting word frequencies", slog.String("db", a.dbPath), slog.Int("words", len(entries)))
	if err := export.WriteWords(a.ctx, conn, lang, entries, export.DefaultBatchSize); err != nil {
		return fmt.Errorf("export words: %w", err)
	}
	return nil
}

func (a *app) ease(req ease.Request) error {
	var sink *export.PairSink
	if a.dbPath != "" {
		conn, err := db.Open(a.dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer conn.Close()
		sink, err = export.NewPairSink(a.ctx, conn, req.From, req.To, export.DefaultBatchSize)
		if err != nil {
			return err
		}
	}

	report, err := a.pipeline.Run(a.ctx, req, func(p ease.Pair) error {
		if _, err := fmt.Fprintf(a.out, "%d\t%d\t%s\t%s\n", p.SourceID, p.TargetID, p.SourceText, p.TargetText); err != nil {
			return err
		}
		if sink != nil {
			return sink.Write(p)
		}
		return nil
	})
	if sink != nil {
		cerr := sink.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("export pairs: %w", cerr)
		}
		if err == nil {
			a.logger.Info("exported pairs", slog.String("db", a.dbPath), slog.Int("pairs", sink.Len()))
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.diag, "Could not find translations for %d sentences\n", report.Skipped)
	return nil
}
