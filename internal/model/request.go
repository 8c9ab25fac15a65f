package model

import "strings"

// ContentType tells the analyzer how to obtain the text to analyze.
type ContentType string

const (
	// ContentTypeText means Content is the text itself.
	ContentTypeText ContentType = "text"

	// ContentTypeLink means Content is a URL whose page text is analyzed.
	ContentTypeLink ContentType = "link"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentTypeText || t == ContentTypeLink
}

// ParseContentType normalizes case and surrounding whitespace.
func ParseContentType(s string) ContentType {
	return ContentType(strings.ToLower(strings.TrimSpace(s)))
}

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	// Type is "text" or "link".
	Type ContentType `json:"type"`

	// Content is the claim text or the URL to fetch.
	Content string `json:"content"`
}

// NewTextRequest builds a request for typed text.
func NewTextRequest(text string) AnalysisRequest {
	return AnalysisRequest{Type: ContentTypeText, Content: text}
}

// NewLinkRequest builds a request for a URL.
func NewLinkRequest(url string) AnalysisRequest {
	return AnalysisRequest{Type: ContentTypeLink, Content: url}
}
