package worker

import (
	"context"
	"sort"

	"github.com/korpus-id/koref/internal/model"
	"github.com/korpus-id/koref/internal/resolve"
	"github.com/korpus-id/koref/internal/segment"
	"github.com/korpus-id/koref/internal/stats"
)

// ParagraphJob segments and resolves one paragraph chunk. The index records
// the chunk's position in the input so output order can be restored after
// parallel processing.
type ParagraphJob struct {
	Index     int
	Chunk     string
	Segmenter *segment.Segmenter
	Resolver  *resolve.Resolver
}

// Execute executes the paragraph job
func (j *ParagraphJob) Execute(ctx context.Context) Result {
	block := j.Segmenter.Segment(j.Chunk)
	record, tally := j.Resolver.Resolve(block)
	return &ParagraphResult{
		Index:  j.Index,
		Record: record,
		Tally:  tally,
	}
}

// ParagraphResult is the outcome of resolving one paragraph
type ParagraphResult struct {
	Index  int
	Record *model.Paragraph
	Tally  *stats.Tally
	Err    error
}

// GetError returns the error from the paragraph result
func (r *ParagraphResult) GetError() error {
	return r.Err
}

// Runner resolves many paragraph chunks concurrently
type Runner struct {
	segmenter *segment.Segmenter
	resolver  *resolve.Resolver
	workers   int
}

// NewRunner creates a runner over the given segmenter and resolver
func NewRunner(segmenter *segment.Segmenter, resolver *resolve.Resolver, workers int) *Runner {
	return &Runner{
		segmenter: segmenter,
		resolver:  resolver,
		workers:   workers,
	}
}

// Run resolves every chunk and returns the results in input order. onResult,
// if non-nil, is called after each paragraph completes with the number done
// so far.
func (r *Runner) Run(ctx context.Context, chunks []string, onResult func(done int)) []*ParagraphResult {
	if len(chunks) == 0 {
		return []*ParagraphResult{}
	}

	pool := NewPool(r.workers)
	pool.Start()
	defer pool.Shutdown()

	// Drain results concurrently so Submit never deadlocks on a full queue.
	collected := make([]*ParagraphResult, 0, len(chunks))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range pool.Results() {
			collected = append(collected, result.(*ParagraphResult))
			if onResult != nil {
				onResult(len(collected))
			}
		}
	}()

	for i, chunk := range chunks {
		pool.Submit(&ParagraphJob{
			Index:     i,
			Chunk:     chunk,
			Segmenter: r.segmenter,
			Resolver:  r.resolver,
		})
	}
	pool.Finish()
	<-done

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})

	return collected
}
