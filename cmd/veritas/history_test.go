package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nao1215/veritas/internal/model"
)

func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	srv, _ := newFakeSerper(t)
	historyDir := t.TempDir()
	cfgPath := writeTestConfig(t, srv.URL, historyDir)

	out, err := executeRoot(t, "check", "--config", cfgPath, "--api-key", testAPIKey, "--json", hoaxClaim)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	requestID := decodeReport(t, out).Results[0].RequestID

	t.Run("lists recorded analyses as JSON", func(t *testing.T) {
		t.Parallel()

		out, err := executeRoot(t, "history", "--config", cfgPath, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rep := decodeReport(t, out)
		if len(rep.Results) != 1 {
			t.Fatalf("expected 1 record, got %d", len(rep.Results))
		}
		got := rep.Results[0]
		if got.RequestID != requestID {
			t.Errorf("request ID = %q, want %q", got.RequestID, requestID)
		}
		if got.Result.Verdict != model.VerdictMisleading {
			t.Errorf("verdict = %q, want Misleading", got.Result.Verdict)
		}
		if got.Timestamp.IsZero() {
			t.Error("expected timestamp")
		}
	})

	t.Run("shows one analysis by request ID", func(t *testing.T) {
		t.Parallel()

		out, err := executeRoot(t, "history", "--config", cfgPath, requestID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Verdict:    Misleading") {
			t.Errorf("expected verdict card, got %q", out)
		}
	})

	t.Run("unknown request ID", func(t *testing.T) {
		t.Parallel()

		_, err := executeRoot(t, "history", "--config", cfgPath, "00000000-0000-0000-0000-000000000000")
		if err == nil || !strings.Contains(err.Error(), "no analysis") {
			t.Errorf("expected 'no analysis' error, got %v", err)
		}
	})

	t.Run("filters by verdict", func(t *testing.T) {
		t.Parallel()

		out, err := executeRoot(t, "history", "--config", cfgPath, "--verdict", "Likely Factual")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "No analyses recorded yet.") {
			t.Errorf("expected empty listing, got %q", out)
		}
	})

	t.Run("rejects unknown verdict", func(t *testing.T) {
		t.Parallel()

		_, err := executeRoot(t, "history", "--config", cfgPath, "--verdict", "Mostly True")
		if err == nil || !strings.Contains(err.Error(), "unknown verdict") {
			t.Errorf("expected 'unknown verdict' error, got %v", err)
		}
	})

	t.Run("stats", func(t *testing.T) {
		t.Parallel()

		out, err := executeRoot(t, "history", "--config", cfgPath, "--stats")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Misleading:") || !strings.Contains(out, "Total:") {
			t.Errorf("unexpected stats output: %q", out)
		}
	})
}

func TestHistoryCmd_NoDatabase(t *testing.T) {
	t.Parallel()

	cfgPath := writeTestConfig(t, "http://127.0.0.1:1", t.TempDir())
	_, err := executeRoot(t, "history", "--config", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "no analysis history") {
		t.Errorf("expected 'no analysis history' error, got %v", err)
	}
}

func TestWriteStats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	counts := map[model.Verdict]int{
		model.VerdictMisleading:  2,
		model.VerdictInputError: 1,
	}
	if err := writeStats(&buf, counts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(model.AllVerdicts())+1 {
		t.Fatalf("expected %d lines, got %d", len(model.AllVerdicts())+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Misleading:") || !strings.HasSuffix(lines[0], " 2") {
		t.Errorf("first line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, " 3") {
		t.Errorf("total line = %q, want total 3", last)
	}
}
