// Package classifier implements the model-based verdict strategy.
//
// A fitted TF-IDF vectorizer and a linear binary classifier are exported by
// the offline trainer as two JSON files in a model directory:
//
//	vectorizer.json  {"vocabulary": {...}, "idf": [...], "lowercase": true,
//	                  "stop_words": [...], "token_pattern": "...",
//	                  "sublinear_tf": false, "norm": "l2"}
//	model.json       {"classes": ["FAKE", "REAL"], "coef": [...], "intercept": 0.0}
//
// LoadArtifacts reads both once at startup. The returned Artifacts value is
// immutable and shared by every request.
//
// The Strategy transforms the text into a sparse vector, predicts a label
// and, when the model exposes a decision margin, derives a confidence from
// the logistic sigmoid of the absolute margin. A model without margins gets
// a fixed confidence instead.
package classifier
