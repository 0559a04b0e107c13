package models

// ArtifactFormatVersion is the only artifact layout this service understands.
const ArtifactFormatVersion = 1

const (
	EncoderOneHot         = "one_hot"
	RegressorLinear       = "linear"
	RegressorRandomForest = "random_forest"
)

// ArtifactFile is the serialized (regressor, encoder) pair.
type ArtifactFile struct {
	FormatVersion       int            `json:"format_version"`
	NumericFeatures     []string       `json:"numeric_features"`
	CategoricalFeatures []string       `json:"categorical_features"`
	FeatureNames        []string       `json:"feature_names,omitempty"`
	Encoder             *EncoderSpec   `json:"encoder"`
	Regressor           *RegressorSpec `json:"regressor"`
}

// EncoderSpec holds the fitted vocabulary per categorical column.
type EncoderSpec struct {
	Type       string     `json:"type"`
	Categories [][]string `json:"categories"`
}

// RegressorSpec holds either linear weights or a forest of decision trees.
type RegressorSpec struct {
	Type         string     `json:"type"`
	Intercept    float64    `json:"intercept,omitempty"`
	Coefficients []float64  `json:"coefficients,omitempty"`
	Trees        []TreeSpec `json:"trees,omitempty"`
}

// TreeSpec is a flattened binary decision tree. Node 0 is the root.
type TreeSpec struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is a split when Left >= 0 and a leaf otherwise.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}
