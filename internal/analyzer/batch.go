package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/veritas/internal/model"
)

// defaultConcurrency is the batch concurrency when none is configured.
const defaultConcurrency = 4

// BatchResult is the outcome of one request in a batch.
type BatchResult struct {
	// RequestID identifies the analysis in logs and history.
	RequestID string
	Result    model.AnalysisResult
}

// AnalyzeBatch analyzes reqs concurrently. Results keep the order of reqs.
// Every request gets its own request ID.
//
// Each request always yields a result, so the only error returned is the
// context error when the batch is cancelled. Requests not started before
// cancellation are left as zero results.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, reqs []model.AnalysisRequest) ([]BatchResult, error) {
	return a.AnalyzeBatchWithCallback(ctx, reqs, nil)
}

// AnalyzeBatchWithCallback is AnalyzeBatch with a callback invoked as each
// request finishes. The callback may run concurrently with itself.
func (a *Analyzer) AnalyzeBatchWithCallback(
	ctx context.Context,
	reqs []model.AnalysisRequest,
	callback func(index int, res BatchResult),
) ([]BatchResult, error) {
	a.logger.Info("starting batch analysis",
		"total", len(reqs),
		"concurrency", a.concurrency,
	)
	start := time.Now()

	results := make([]BatchResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			id := uuid.NewString()
			res := BatchResult{
				RequestID: id,
				Result:    a.Analyze(WithRequestID(ctx, id), req),
			}
			// Each goroutine owns its own slot.
			results[i] = res
			if callback != nil {
				callback(i, res)
			}
			return nil
		})
	}

	err := g.Wait()

	a.logger.Info("batch analysis complete",
		"total", len(reqs),
		"elapsed", time.Since(start),
	)
	return results, err
}
