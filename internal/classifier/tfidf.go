package classifier

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultTokenPattern is scikit-learn's default token pattern: runs of two
// or more word characters.
const defaultTokenPattern = `(?u)\b\w\w+\b`

// Vectorizer turns text into a feature vector.
type Vectorizer interface {
	Transform(text string) (Vector, error)
}

// TFIDFVectorizer applies a fitted vocabulary and IDF table to one document.
type TFIDFVectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	lowercase   bool
	stopWords   map[string]struct{}
	tokenize    func(string) []string
	sublinearTF bool
	norm        string
}

// vectorizerFile is the on-disk form of a TFIDFVectorizer.
type vectorizerFile struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Lowercase    *bool          `json:"lowercase"`
	StopWords    []string       `json:"stop_words"`
	TokenPattern string         `json:"token_pattern"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Norm         *string        `json:"norm"`
}

// newTFIDFVectorizer validates f and builds a vectorizer from it.
func newTFIDFVectorizer(f vectorizerFile) (*TFIDFVectorizer, error) {
	if len(f.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrInvalidArtifacts)
	}
	for term, idx := range f.Vocabulary {
		if idx < 0 || idx >= len(f.IDF) {
			return nil, fmt.Errorf("%w: term %q has index %d outside idf table of %d", ErrInvalidArtifacts, term, idx, len(f.IDF))
		}
	}

	tokenize, err := tokenizer(f.TokenPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: token pattern: %w", ErrInvalidArtifacts, err)
	}

	norm := "l2"
	if f.Norm != nil {
		norm = strings.ToLower(*f.Norm)
	}
	if norm != "l2" && norm != "l1" && norm != "" {
		return nil, fmt.Errorf("%w: unsupported norm %q", ErrInvalidArtifacts, norm)
	}

	lowercase := true
	if f.Lowercase != nil {
		lowercase = *f.Lowercase
	}

	stop := make(map[string]struct{}, len(f.StopWords))
	for _, w := range f.StopWords {
		stop[w] = struct{}{}
	}

	return &TFIDFVectorizer{
		vocabulary:  f.Vocabulary,
		idf:         f.IDF,
		lowercase:   lowercase,
		stopWords:   stop,
		tokenize:    tokenize,
		sublinearTF: f.SublinearTF,
		norm:        norm,
	}, nil
}

// Dimension returns the number of features.
func (v *TFIDFVectorizer) Dimension() int {
	return len(v.idf)
}

// Transform computes the TF-IDF vector of text.
// Terms outside the vocabulary are ignored.
func (v *TFIDFVectorizer) Transform(text string) (Vector, error) {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, tok := range v.tokenize(text) {
		if _, stop := v.stopWords[tok]; stop {
			continue
		}
		if idx, ok := v.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	for _, idx := range vec.Indices {
		tf := counts[idx]
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec.Values = append(vec.Values, tf*v.idf[idx])
	}

	normalizeVector(vec.Values, v.norm)
	return vec, nil
}

// normalizeVector scales values in place to unit l1 or l2 length.
func normalizeVector(values []float64, norm string) {
	var length float64
	switch norm {
	case "l2":
		for _, x := range values {
			length += x * x
		}
		length = math.Sqrt(length)
	case "l1":
		for _, x := range values {
			length += math.Abs(x)
		}
	default:
		return
	}
	if length == 0 {
		return
	}
	for i := range values {
		values[i] /= length
	}
}

// tokenizer returns the tokenizer for pattern.
// The default pattern is matched with Unicode word characters, which Go's
// regexp \w and \b do not provide.
func tokenizer(pattern string) (func(string) []string, error) {
	if pattern == "" || pattern == defaultTokenPattern || pattern == `\b\w\w+\b` {
		return wordTokens, nil
	}
	re, err := regexp.Compile(strings.TrimPrefix(pattern, "(?u)"))
	if err != nil {
		return nil, err
	}
	return func(s string) []string {
		return re.FindAllString(s, -1)
	}, nil
}

// wordTokens splits s into runs of letters, digits, marks and underscores
// and keeps runs of at least two characters.
func wordTokens(s string) []string {
	isWord := func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return !isWord(r) })

	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}
