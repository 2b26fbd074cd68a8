// Package forest evaluates an exported random forest of CART classification trees
package forest

import (
	"encoding/json"
	"io"

	perr "scotuspredict/internal/platform/errors"
)

const (
	// Format tags a forest export document
	Format = "scotuspredict.forest"

	// Version is the only document version this package reads
	Version = 1

	// LeafFeature marks a node with no split
	LeafFeature = -1
)

// Node is one flat-array tree node; children always sit at higher indices
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float32   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

// Leaf reports whether n carries a class distribution instead of a split
func (n Node) Leaf() bool { return n.Feature == LeafFeature }

// Tree is a single decision tree rooted at node 0
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Document is the JSON export written by the training side
type Document struct {
	Format       string   `json:"format"`
	Version      int      `json:"version"`
	NFeatures    int      `json:"n_features"`
	Classes      []int    `json:"classes"`
	FeatureNames []string `json:"feature_names,omitempty"`
	Trees        []Tree   `json:"trees"`
}

// Forest is an immutable, validated ensemble safe for concurrent Predict calls
type Forest struct {
	doc Document
}

// Decode reads and validates a Document from r
func Decode(r io.Reader) (*Forest, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDeserialization, "forest: malformed json")
	}
	return New(doc)
}

// New validates doc and returns a Forest over it
func New(doc Document) (*Forest, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return &Forest{doc: doc}, nil
}

// Encode writes the forest's document as JSON
func (f *Forest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(f.doc)
}

// NFeatures is the expected input width
func (f *Forest) NFeatures() int { return f.doc.NFeatures }

// Classes returns a copy of the class labels in output order
func (f *Forest) Classes() []int { return append([]int(nil), f.doc.Classes...) }

// FeatureNames returns a copy of the exported feature names, possibly empty
func (f *Forest) FeatureNames() []string { return append([]string(nil), f.doc.FeatureNames...) }

// Trees is the ensemble size
func (f *Forest) Trees() int { return len(f.doc.Trees) }

// Predict averages per-tree class distributions and returns the argmax class and the averaged probabilities.
// Ties go to the first class index.
func (f *Forest) Predict(x []float64) (int, []float64, error) {
	if len(x) != f.doc.NFeatures {
		return 0, nil, perr.Newf(perr.ErrorCodeInvalidArgument, "forest: want %d features, got %d", f.doc.NFeatures, len(x))
	}
	nc := len(f.doc.Classes)
	proba := make([]float64, nc)
	for _, t := range f.doc.Trees {
		leaf := t.walk(x)
		var sum float64
		for _, v := range leaf.Value {
			sum += v
		}
		for i, v := range leaf.Value {
			if sum > 0 {
				proba[i] += v / sum
			} else {
				proba[i] += 1 / float64(nc)
			}
		}
	}
	best := 0
	for i := range proba {
		proba[i] /= float64(len(f.doc.Trees))
		if proba[i] > proba[best] {
			best = i
		}
	}
	return f.doc.Classes[best], proba, nil
}

// walk descends from the root; validation guarantees termination
func (t Tree) walk(x []float64) Node {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf() {
			return n
		}
		if float32(x[n.Feature]) <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
