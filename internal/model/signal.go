package model

import "strings"

// SearchResult is one organic result returned by the search provider.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Label is the binary output of the fake/real classifier.
type Label string

const (
	// LabelFake marks text resembling the fake news corpus.
	LabelFake Label = "FAKE"

	// LabelReal marks text resembling the reliable news corpus.
	LabelReal Label = "REAL"
)

// ParseLabel maps a class name to a Label, ignoring case.
// The second return value is false for anything other than FAKE or REAL.
func ParseLabel(s string) (Label, bool) {
	switch Label(strings.ToUpper(strings.TrimSpace(s))) {
	case LabelFake:
		return LabelFake, true
	case LabelReal:
		return LabelReal, true
	default:
		return "", false
	}
}

// ClassifierOutput is what the classifier collaborator reports for one text.
type ClassifierOutput struct {
	Label Label

	// Margin is the signed distance from the decision boundary.
	// Only meaningful when HasMargin is true.
	Margin    float64
	HasMargin bool
}
