// Package normalize prepares text for analysis.
//
// Text coming from a form field or a scraped page is canonicalized to NFC,
// has every whitespace run collapsed to a single space, and is truncated to a
// bounded number of runes so strategies never receive unbounded input.
package normalize
