package ease

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/frequency"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/links"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/tokenize"
)

// Pipeline runs the indexing, scoring and linking stages. Every stage
// re-reads its input files from the start.
type Pipeline struct {
	Source   corpus.Source
	Selector *tokenize.Selector
	// Logger receives progress messages. nil means no logging.
	Logger *slog.Logger
}

// NewPipeline creates a Pipeline that segments the given languages.
func NewPipeline(src corpus.Source, segmented []string, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Source:   src,
		Selector: tokenize.NewSelector(segmented),
		Logger:   logger,
	}
}

// Request names the inputs of an ease run.
type Request struct {
	From       string
	To         string
	CorpusPath string
	LinkPath   string
}

// Report summarizes an ease run.
type Report struct {
	Words   int // distinct word keys of the source language
	Scored  int // source sentences that received a score
	Linked  int // source sentences with at least one usable link
	Emitted int
	Skipped int
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Pipeline) selector() *tokenize.Selector {
	if p.Selector == nil {
		return tokenize.NewSelector(tokenize.DefaultSegmented)
	}
	return p.Selector
}

// Frequencies counts the words of lang in path and lists them by rank.
func (p *Pipeline) Frequencies(ctx context.Context, path, lang string) ([]frequency.Entry, error) {
	tok, err := p.selector().For(lang)
	if err != nil {
		return nil, err
	}
	p.logger().Info("finding word frequencies", slog.String("lang", lang), slog.String("tokenizer", p.selector().Kind(lang).String()))
	freq, err := frequency.Count(ctx, p.Source, path, lang, tok)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	p.logger().Info("sorting and indexing words", slog.Int("words", len(freq)))
	return frequency.Entries(freq), nil
}

// Run executes every stage for req and calls emit for each output pair,
// easiest first.
func (p *Pipeline) Run(ctx context.Context, req Request, emit func(Pair) error) (Report, error) {
	log := p.logger()
	var report Report

	tok, err := p.selector().For(req.From)
	if err != nil {
		return report, err
	}

	log.Info("finding word frequencies", slog.String("lang", req.From), slog.String("tokenizer", p.selector().Kind(req.From).String()))
	freq, err := frequency.Count(ctx, p.Source, req.CorpusPath, req.From, tok)
	if err != nil {
		return report, fmt.Errorf("count words: %w", err)
	}
	report.Words = len(freq)

	log.Info("sorting and indexing words", slog.Int("words", report.Words))
	ranks := frequency.Ranks(freq)

	log.Info("ordering sentences by ease")
	scored, err := Score(ctx, p.Source, req.CorpusPath, req.From, ranks, tok)
	if err != nil {
		return report, fmt.Errorf("score sentences: %w", err)
	}
	report.Scored = len(scored)

	log.Info("reading sentence links", slog.String("from", req.From), slog.String("to", req.To))
	linkMap, err := links.Resolve(ctx, p.Source, req.CorpusPath, req.LinkPath, req.From, req.To)
	if err != nil {
		return report, fmt.Errorf("resolve links: %w", err)
	}
	report.Linked = len(linkMap)

	log.Info("fetching required translations", slog.Int("sources", report.Linked))
	texts, err := links.Translations(ctx, p.Source, req.CorpusPath, linkMap)
	if err != nil {
		return report, fmt.Errorf("fetch translations: %w", err)
	}

	log.Info("outputting pairs")
	skipped, err := Compose(scored, linkMap, texts, func(pair Pair) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(pair); err != nil {
			return err
		}
		report.Emitted++
		return nil
	})
	report.Skipped = skipped
	if err != nil {
		return report, fmt.Errorf("emit pair: %w", err)
	}
	log.Info("finished",
		slog.Int("scored", report.Scored),
		slog.Int("linked", report.Linked),
		slog.Int("emitted", report.Emitted),
		slog.Int("skipped", report.Skipped))
	return report, nil
}
