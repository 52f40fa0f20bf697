package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Scorer estimates the positive-class probability for one encoded feature
// vector. Implementations must be safe for concurrent use; the production
// model is read-only after load.
type Scorer interface {
	Score(features []float64) (float64, error)
}

type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
	Leaf      bool    `json:"leaf"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// Model is a pre-trained gradient-boosted tree ensemble deserialized from
// a JSON artifact. The raw additive score is init_score plus the learning
// rate times the sum of per-tree leaf values; calibrated models map it to
// a probability through the logistic function, uncalibrated ones only
// expose the predicted label, degrading precision to {0, 1}.
type Model struct {
	ModelType    string   `json:"model_type"`
	FeatureNames []string `json:"feature_names"`
	InitScore    float64  `json:"init_score"`
	LearningRate float64  `json:"learning_rate"`
	Calibrated   bool     `json:"calibrated"`
	Trees        []tree   `json:"trees"`
}

// Load reads and validates a model artifact. Any failure here is expected
// to be fatal to process startup: a server without a scorable model must
// not accept requests.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %s: %w", path, err)
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing model artifact %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &m, nil
}

// validate checks the artifact against the feature catalog contract and
// rejects trees with out-of-range references.
func (m *Model) validate() error {
	if len(m.FeatureNames) != len(FeatureNames) {
		return fmt.Errorf("model expects %d features, catalog has %d", len(m.FeatureNames), len(FeatureNames))
	}
	for i, name := range m.FeatureNames {
		if name != FeatureNames[i] {
			return fmt.Errorf("feature order mismatch at slot %d: model %q, catalog %q", i, name, FeatureNames[i])
		}
	}
	if len(m.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for ti, t := range m.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf {
				continue
			}
			if n.Feature < 0 || n.Feature >= len(m.FeatureNames) {
				return fmt.Errorf("tree %d node %d references feature %d", ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d has child out of range", ti, ni)
			}
		}
	}
	return nil
}

func (t tree) eval(features []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// decision returns the raw additive log-odds score.
func (m *Model) decision(features []float64) float64 {
	sum := m.InitScore
	for _, t := range m.Trees {
		sum += m.LearningRate * t.eval(features)
	}
	return sum
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Score implements Scorer. Every call re-scores from scratch; the ensemble
// is a pure function of the feature vector.
func (m *Model) Score(features []float64) (float64, error) {
	if len(features) != len(m.FeatureNames) {
		return 0, fmt.Errorf("feature vector has %d slots, model expects %d", len(features), len(m.FeatureNames))
	}
	d := m.decision(features)
	if m.Calibrated {
		return sigmoid(d), nil
	}
	// Uncalibrated artifact: fall back to the predicted label as a float.
	if d >= 0 {
		return 1, nil
	}
	return 0, nil
}
