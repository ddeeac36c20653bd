// Package pipeline wires the conversion end to end: bulk read, parallel
// per-paragraph resolution, statistics merge, and JSONL output.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/korpus-id/koref/internal/model"
	"github.com/korpus-id/koref/internal/resolve"
	"github.com/korpus-id/koref/internal/segment"
	"github.com/korpus-id/koref/internal/stats"
	"github.com/korpus-id/koref/internal/worker"
)

// Pipeline orchestrates the complete conversion process
type Pipeline struct {
	config    *model.Config
	segmenter *segment.Segmenter
	resolver  *resolve.Resolver
	runner    *worker.Runner
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, log *zap.Logger) *Pipeline {
	segmenter := segment.NewSegmenter(cfg.Input)
	resolver := resolve.NewResolver(cfg.Policy, log)

	return &Pipeline{
		config:    cfg,
		segmenter: segmenter,
		resolver:  resolver,
		runner:    worker.NewRunner(segmenter, resolver, cfg.Concurrency.Workers),
	}
}

// Result contains the resolved records and the merged corpus statistics
type Result struct {
	Paragraphs []*model.Paragraph
	Stats      *stats.Tally
}

// Convert resolves every paragraph chunk in input order. progressW, if
// non-nil, receives throttled progress updates.
func (p *Pipeline) Convert(ctx context.Context, chunks []string, progressW io.Writer) *Result {
	var progress *Progress
	var onResult func(done int)
	if progressW != nil {
		progress = NewProgress(progressW, len(chunks), p.config.Output.ProgressPerSecond)
		onResult = progress.Update
	}

	results := p.runner.Run(ctx, chunks, onResult)
	if progress != nil {
		progress.Done()
	}

	// Per-worker tallies merge single-threaded once the pool has drained.
	out := &Result{
		Paragraphs: make([]*model.Paragraph, 0, len(results)),
		Stats:      stats.NewTally(),
	}
	for _, res := range results {
		out.Paragraphs = append(out.Paragraphs, res.Record)
		out.Stats.Merge(res.Tally)
	}

	return out
}

// ConvertFile reads the dump at inputPath, converts it, and writes JSONL to
// outputPath (skipped when empty, for statistics-only runs). File-level
// errors are fatal; annotation-level anomalies are logged by the resolver
// and survived.
func (p *Pipeline) ConvertFile(ctx context.Context, inputPath, outputPath string, progressW io.Writer) (*Result, error) {
	chunks, err := ReadBlocks(inputPath)
	if err != nil {
		return nil, err
	}

	result := p.Convert(ctx, chunks, progressW)

	if outputPath != "" {
		if err := WriteJSONL(outputPath, result.Paragraphs); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}

	return result, nil
}
