package report

import (
	"io"
	"time"

	"github.com/nao1215/veritas/internal/model"
)

// Item is one analyzed input and its result.
type Item struct {
	// RequestID identifies the analysis in the history store.
	RequestID string `json:"request_id,omitempty"`

	// Type is the content type of the request.
	Type model.ContentType `json:"type"`

	// Input is the text or URL that was analyzed.
	Input string `json:"input"`

	// Result is the analysis outcome.
	Result model.AnalysisResult `json:"result"`

	// Timestamp is when the analysis ran. Zero for fresh results.
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// NewItem pairs a request with its result.
func NewItem(req model.AnalysisRequest, res model.AnalysisResult) Item {
	return Item{Type: req.Type, Input: req.Content, Result: res}
}

// Writer renders analysis items.
type Writer interface {
	// Write outputs items and returns the number of bytes written.
	Write(items []Item) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs items to all Writers and stops on the first error.
func (m *MultiWriter) Write(items []Item) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(items)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// verdictCounts tallies items per verdict in the canonical verdict order.
func verdictCounts(items []Item) []verdictCount {
	counts := make(map[model.Verdict]int)
	for _, it := range items {
		counts[it.Result.Verdict]++
	}

	out := make([]verdictCount, 0, len(counts))
	for _, v := range model.AllVerdicts() {
		if n := counts[v]; n > 0 {
			out = append(out, verdictCount{Verdict: v, Count: n})
		}
	}
	return out
}

type verdictCount struct {
	Verdict model.Verdict
	Count   int
}
