package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// VectorizerFile is the vectorizer artifact file name.
	VectorizerFile = "vectorizer.json"

	// ModelFile is the classifier artifact file name.
	ModelFile = "model.json"
)

// Artifacts pairs a fitted vectorizer with its classifier.
// It is read-only after loading.
type Artifacts struct {
	Vectorizer Vectorizer
	Classifier Classifier
}

// LoadArtifacts reads vectorizer.json and model.json from dir.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var vf vectorizerFile
	if err := readJSON(filepath.Join(dir, VectorizerFile), &vf); err != nil {
		return nil, err
	}
	vec, err := newTFIDFVectorizer(vf)
	if err != nil {
		return nil, err
	}

	var mf modelFile
	if err := readJSON(filepath.Join(dir, ModelFile), &mf); err != nil {
		return nil, err
	}
	lm, err := newLinearModel(mf, vec.Dimension())
	if err != nil {
		return nil, err
	}

	return &Artifacts{Vectorizer: vec, Classifier: lm}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured model directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactsMissing, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArtifacts, path, err)
	}
	return nil
}
