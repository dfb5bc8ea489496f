package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/denguerisk/internal/validate"
)

// DefaultArtifactPath is where the trained model is looked up, relative to
// the working directory.
const DefaultArtifactPath = "models/xgb_model.json"

// Booster is a gradient-boosted tree ensemble loaded from an XGBoost JSON
// model. It is immutable after Load and safe for concurrent use.
type Booster struct {
	id         string
	names      []string
	numFeature int
	baseMargin float64
	trees      []tree
}

var _ Predictor = (*Booster)(nil)

type tree struct {
	left        []int
	right       []int
	split       []int
	cond        []float64
	defaultLeft []bool
}

// On-disk layout. Numeric learner parameters are serialized as strings.
type xgbDocument struct {
	Learner struct {
		FeatureNames      []string `json:"feature_names"`
		LearnerModelParam struct {
			BaseScore  string `json:"base_score"`
			NumFeature string `json:"num_feature"`
			NumClass   string `json:"num_class"`
		} `json:"learner_model_param"`
		Objective struct {
			Name string `json:"name"`
		} `json:"objective"`
		GradientBooster struct {
			Name  string `json:"name"`
			Model struct {
				Trees []xgbTree `json:"trees"`
			} `json:"model"`
		} `json:"gradient_booster"`
	} `json:"learner"`
}

type xgbTree struct {
	LeftChildren    []int      `json:"left_children"`
	RightChildren   []int      `json:"right_children"`
	SplitIndices    []int      `json:"split_indices"`
	SplitConditions []float64  `json:"split_conditions"`
	SplitType       []int      `json:"split_type"`
	DefaultLeft     []flexBool `json:"default_left"`
}

// flexBool decodes both 0/1 and false/true; XGBoost versions disagree.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "1", "true":
		*b = true
	case "0", "false":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

// Load reads, verifies and compiles the artifact at path. All failures are
// returned as *ErrArtifactLoad.
func Load(path string) (*Booster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrArtifactLoad{Path: path, Err: err}
	}
	if err := verifySidecar(path, data); err != nil {
		return nil, &ErrArtifactLoad{Path: path, Err: err}
	}

	b, err := parseBooster(data)
	if err != nil {
		return nil, &ErrArtifactLoad{Path: path, Err: err}
	}
	b.id = fmt.Sprintf("xgboost:%s@%s", filepath.Base(path), digest(data)[:12])
	return b, nil
}

func parseBooster(data []byte) (*Booster, error) {
	if err := validate.JSON(ArtifactSchema, data); err != nil {
		return nil, err
	}

	var doc xgbDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	l := doc.Learner

	if name := l.GradientBooster.Name; name != "" && name != "gbtree" {
		return nil, fmt.Errorf("unsupported booster %q", name)
	}
	if nc := l.LearnerModelParam.NumClass; nc != "" && nc != "0" && nc != "1" {
		return nil, fmt.Errorf("multi-class model (num_class=%s) is not a binary classifier", nc)
	}

	numFeature, err := strconv.Atoi(l.LearnerModelParam.NumFeature)
	if err != nil || numFeature <= 0 {
		return nil, fmt.Errorf("invalid num_feature %q", l.LearnerModelParam.NumFeature)
	}
	if len(l.FeatureNames) > 0 && len(l.FeatureNames) != numFeature {
		return nil, fmt.Errorf("feature_names has %d entries, num_feature is %d", len(l.FeatureNames), numFeature)
	}

	baseScore, err := parseBaseScore(l.LearnerModelParam.BaseScore)
	if err != nil {
		return nil, err
	}
	baseMargin, err := marginFor(l.Objective.Name, baseScore)
	if err != nil {
		return nil, err
	}

	b := &Booster{
		names:      l.FeatureNames,
		numFeature: numFeature,
		baseMargin: baseMargin,
		trees:      make([]tree, 0, len(l.GradientBooster.Model.Trees)),
	}
	for i, raw := range l.GradientBooster.Model.Trees {
		t, err := compileTree(raw, numFeature)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		b.trees = append(b.trees, t)
	}
	return b, nil
}

// parseBaseScore accepts "5E-1" and the bracketed "[5E-1]" written by
// newer XGBoost releases.
func parseBaseScore(s string) (float64, error) {
	s = strings.TrimSpace(strings.Trim(s, "[]"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid base_score %q", s)
	}
	return v, nil
}

// marginFor converts base_score to the raw margin added to the tree sum.
func marginFor(objective string, baseScore float64) (float64, error) {
	switch objective {
	case "binary:logistic", "reg:logistic":
		if baseScore <= 0 || baseScore >= 1 {
			return 0, fmt.Errorf("base_score %v outside (0,1) for %s", baseScore, objective)
		}
		return math.Log(baseScore / (1 - baseScore)), nil
	case "binary:logitraw":
		return baseScore, nil
	default:
		return 0, fmt.Errorf("unsupported objective %q", objective)
	}
}

func compileTree(raw xgbTree, numFeature int) (tree, error) {
	n := len(raw.LeftChildren)
	if n == 0 {
		return tree{}, fmt.Errorf("empty tree")
	}
	if len(raw.RightChildren) != n || len(raw.SplitIndices) != n ||
		len(raw.SplitConditions) != n || len(raw.DefaultLeft) != n {
		return tree{}, fmt.Errorf("node arrays have inconsistent lengths")
	}
	for _, st := range raw.SplitType {
		if st != 0 {
			return tree{}, fmt.Errorf("categorical splits are not supported")
		}
	}

	t := tree{
		left:        raw.LeftChildren,
		right:       raw.RightChildren,
		split:       raw.SplitIndices,
		cond:        raw.SplitConditions,
		defaultLeft: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		t.defaultLeft[i] = bool(raw.DefaultLeft[i])
		l, r := t.left[i], t.right[i]
		if l == -1 && r == -1 {
			continue
		}
		// Children always follow their parent, so traversal terminates.
		if l <= i || l >= n || r <= i || r >= n {
			return tree{}, fmt.Errorf("node %d has invalid children %d/%d", i, l, r)
		}
		if s := t.split[i]; s < 0 || s >= numFeature {
			return tree{}, fmt.Errorf("node %d splits on feature %d, model has %d", i, s, numFeature)
		}
	}
	return t, nil
}

// leaf walks the tree for row x and returns the leaf value.
func (t tree) leaf(x []float64) float64 {
	i := 0
	for t.left[i] != -1 {
		v := x[t.split[i]]
		switch {
		case math.IsNaN(v):
			if t.defaultLeft[i] {
				i = t.left[i]
			} else {
				i = t.right[i]
			}
		case v < t.cond[i]:
			i = t.left[i]
		default:
			i = t.right[i]
		}
	}
	return t.cond[i]
}

// Margin returns the raw score for row, before the logistic link.
func (b *Booster) Margin(row []float64) float64 {
	sum := b.baseMargin
	for _, t := range b.trees {
		sum += t.leaf(row)
	}
	return sum
}

// PredictProbability implements Predictor.
func (b *Booster) PredictProbability(ctx context.Context, columns []string, row []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := checkColumns(b.names, b.numFeature, columns, row); err != nil {
		return 0, err
	}
	return sigmoid(b.Margin(row)), nil
}

// FeatureNames implements Predictor.
func (b *Booster) FeatureNames() []string {
	if b.names == nil {
		return nil
	}
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// NumFeature implements Predictor.
func (b *Booster) NumFeature() int { return b.numFeature }

// ModelID implements Predictor.
func (b *Booster) ModelID() string { return b.id }

// NumTrees returns the number of trees in the ensemble.
func (b *Booster) NumTrees() int { return len(b.trees) }

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
