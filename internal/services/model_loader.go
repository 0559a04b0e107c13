package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"alfredoptarigan/salary-estimator/internal/models"
)

var (
	// ErrMalformedArtifact is returned for artifacts that cannot be decoded or lack a part.
	ErrMalformedArtifact = errors.New("malformed model artifact")
	// ErrFeatureOrder is returned when the artifact was trained on a different feature layout.
	ErrFeatureOrder = errors.New("feature layout mismatch")
)

// ModelArtifact is the loaded (regressor, encoder) pair. It is immutable after loading.
type ModelArtifact struct {
	Encoder      *OneHotEncoder
	Regressor    Regressor
	FeatureNames []string
}

// LoadArtifact reads and validates the model artifact from the store.
func LoadArtifact(ctx context.Context, store ArtifactStore, name string) (*ModelArtifact, error) {
	rc, err := OpenDecoded(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer rc.Close()

	return ParseArtifact(rc)
}

// ParseArtifact decodes an artifact and checks its feature layout against
// models.NumericFeatures and models.CategoricalFeatures.
func ParseArtifact(r io.Reader) (*ModelArtifact, error) {
	var file models.ArtifactFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}

	if file.FormatVersion != models.ArtifactFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrMalformedArtifact, file.FormatVersion)
	}
	if file.Encoder == nil || file.Regressor == nil {
		return nil, fmt.Errorf("%w: artifact must contain both a regressor and an encoder", ErrMalformedArtifact)
	}
	if file.Encoder.Type != models.EncoderOneHot {
		return nil, fmt.Errorf("%w: unsupported encoder type %q", ErrMalformedArtifact, file.Encoder.Type)
	}

	if !slices.Equal(file.NumericFeatures, columnNames(models.NumericFeatures)) {
		return nil, fmt.Errorf("%w: numeric features %v, expected %v",
			ErrFeatureOrder, file.NumericFeatures, models.NumericFeatures)
	}
	if !slices.Equal(file.CategoricalFeatures, columnNames(models.CategoricalFeatures)) {
		return nil, fmt.Errorf("%w: categorical features %v, expected %v",
			ErrFeatureOrder, file.CategoricalFeatures, models.CategoricalFeatures)
	}

	encoder, err := NewOneHotEncoder(models.CategoricalFeatures, file.Encoder.Categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}

	names := append(columnNames(models.NumericFeatures), encoder.FeatureNames()...)
	if len(file.FeatureNames) > 0 && !slices.Equal(file.FeatureNames, names) {
		return nil, fmt.Errorf("%w: stored feature names do not match the encoder layout", ErrFeatureOrder)
	}

	regressor, err := NewRegressor(file.Regressor, len(names))
	if err != nil {
		if errors.Is(err, ErrFeatureOrder) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}

	return &ModelArtifact{
		Encoder:      encoder,
		Regressor:    regressor,
		FeatureNames: names,
	}, nil
}

func columnNames(cols []models.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
