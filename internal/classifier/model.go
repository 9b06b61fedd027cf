// Package classifier implements the trained half of the recommender: a
// TF-IDF feature pipeline feeding a multinomial logistic regression that
// predicts a probability distribution over known careers.
package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/jonathan/internship-recommender/internal/dataset"
	"github.com/jonathan/internship-recommender/internal/features"
	"github.com/jonathan/internship-recommender/internal/types"
)

// ErrNotTrained is returned when inference is requested before a model has
// been trained or loaded. There is no silent fallback.
var ErrNotTrained = errors.New("classifier: model not trained")

// Training hyperparameters. Batch gradient descent with zero initialization
// keeps training fully deterministic for a given dataset.
const (
	trainIterations = 500
	learningRate    = 0.1
	l2Penalty       = 1e-4
)

// Model is a fitted vectorizer plus softmax regression weights. All fields
// are exported for gob encoding of the persisted artifact.
type Model struct {
	Vectorizer *features.Vectorizer
	Classes    []string    // career titles in first-seen dataset order
	Weights    [][]float64 // one row of per-feature weights per class
	Bias       []float64
}

// ClassProbability pairs a career with its predicted probability.
type ClassProbability struct {
	Career      string
	Probability float64
}

// Train fits the feature pipeline and classifier against the dataset.
func Train(ds *dataset.Dataset) (*Model, error) {
	if len(ds.Examples) == 0 {
		return nil, fmt.Errorf("classifier: no training examples in dataset")
	}

	vectorizer := &features.Vectorizer{}
	vectorizer.Fit(ds.Examples)

	classes := ds.Careers()
	classIndex := make(map[string]int, len(classes))
	for i, career := range classes {
		classIndex[career] = i
	}

	vectors := make([][]float64, 0, len(ds.Examples))
	targets := make([]int, 0, len(ds.Examples))
	for _, ex := range ds.Examples {
		idx, ok := classIndex[ex.Career]
		if !ok {
			// Careers() covers every example career; guard anyway.
			continue
		}
		vec, err := vectorizer.TransformExample(ex)
		if err != nil {
			return nil, fmt.Errorf("classifier: transform training example: %w", err)
		}
		vectors = append(vectors, vec)
		targets = append(targets, idx)
	}

	m := &Model{
		Vectorizer: vectorizer,
		Classes:    classes,
		Weights:    make([][]float64, len(classes)),
		Bias:       make([]float64, len(classes)),
	}
	dim := vectorizer.Dim()
	for c := range m.Weights {
		m.Weights[c] = make([]float64, dim)
	}

	m.fit(vectors, targets)
	return m, nil
}

// fit runs batch gradient descent on the cross-entropy loss.
func (m *Model) fit(vectors [][]float64, targets []int) {
	n := float64(len(vectors))
	numClasses := len(m.Classes)
	dim := len(m.Weights[0])

	gradW := make([][]float64, numClasses)
	gradB := make([]float64, numClasses)
	for c := range gradW {
		gradW[c] = make([]float64, dim)
	}

	for iter := 0; iter < trainIterations; iter++ {
		for c := 0; c < numClasses; c++ {
			gradB[c] = 0
			for j := 0; j < dim; j++ {
				gradW[c][j] = 0
			}
		}

		for i, vec := range vectors {
			probs := m.softmax(vec)
			for c := 0; c < numClasses; c++ {
				delta := probs[c]
				if c == targets[i] {
					delta -= 1
				}
				gradB[c] += delta
				for j, x := range vec {
					if x != 0 {
						gradW[c][j] += delta * x
					}
				}
			}
		}

		for c := 0; c < numClasses; c++ {
			m.Bias[c] -= learningRate * gradB[c] / n
			for j := 0; j < dim; j++ {
				grad := gradW[c][j]/n + l2Penalty*m.Weights[c][j]
				m.Weights[c][j] -= learningRate * grad
			}
		}
	}
}

// PredictProba transforms the profile with the fitted pipeline and returns
// the probability distribution over known careers, in class order.
func (m *Model) PredictProba(p *types.LearnerProfile) ([]ClassProbability, error) {
	if m == nil || m.Vectorizer == nil || len(m.Classes) == 0 {
		return nil, ErrNotTrained
	}
	vec, err := m.Vectorizer.TransformProfile(p)
	if err != nil {
		return nil, fmt.Errorf("classifier: transform profile: %w", err)
	}

	probs := m.softmax(vec)
	result := make([]ClassProbability, len(m.Classes))
	for i, career := range m.Classes {
		result[i] = ClassProbability{Career: career, Probability: probs[i]}
	}
	return result, nil
}

// softmax computes class probabilities for one feature vector, with the
// usual max-subtraction for numeric stability.
func (m *Model) softmax(vec []float64) []float64 {
	logits := make([]float64, len(m.Classes))
	maxLogit := math.Inf(-1)
	for c := range m.Classes {
		z := m.Bias[c]
		for j, x := range vec {
			if x != 0 {
				z += m.Weights[c][j] * x
			}
		}
		logits[c] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	sum := 0.0
	for c, z := range logits {
		logits[c] = math.Exp(z - maxLogit)
		sum += logits[c]
	}
	for c := range logits {
		logits[c] /= sum
	}
	return logits
}
