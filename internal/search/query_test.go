package search

import "testing"

// TestDebunkQuery tests the debunk query shape.
func TestDebunkQuery(t *testing.T) {
	t.Parallel()

	terms := []string{"fact check", "hoax", "false", "debunked"}
	got := DebunkQuery("  The moon is cheese ", terms)
	want := `"The moon is cheese" fact check OR hoax OR false OR debunked`
	if got != want {
		t.Errorf("DebunkQuery() = %q, want %q", got, want)
	}

	if got := DebunkQuery(`say "hi"`, nil); got != `"say hi"` {
		t.Errorf("DebunkQuery() without terms = %q", got)
	}
}

// TestSiteQuery tests the site-restricted query shape.
func TestSiteQuery(t *testing.T) {
	t.Parallel()

	got := SiteQuery("claim", []string{"bbc.com", "reuters.com"})
	want := `"claim" site:bbc.com OR site:reuters.com`
	if got != want {
		t.Errorf("SiteQuery() = %q, want %q", got, want)
	}

	if got := SiteQuery("claim", nil); got != `"claim"` {
		t.Errorf("SiteQuery() without sites = %q", got)
	}
}
