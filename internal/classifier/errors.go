package classifier

import "errors"

var (
	// ErrArtifactsMissing is returned when an artifact file does not exist.
	ErrArtifactsMissing = errors.New("model artifacts not found")

	// ErrInvalidArtifacts is returned when an artifact file is malformed.
	ErrInvalidArtifacts = errors.New("model artifacts are invalid")

	// ErrDimensionMismatch is returned when a vector does not fit the model.
	ErrDimensionMismatch = errors.New("feature vector does not match model dimension")
)
