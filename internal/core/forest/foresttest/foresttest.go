// Package foresttest builds tiny forests for tests in other packages
package foresttest

import (
	"testing"

	"scotuspredict/internal/core/forest"
)

// SplitIssue is the issue code the Stump forest splits on
const SplitIssue = 80000

// Names is the trained feature layout
var Names = []string{"issue", "case_origin", "case_source", "cert_reason", "law_type", "natural_court", "admin_action"}

// Document returns a one-tree forest: issue <= SplitIssue votes class 0, above votes class 1
func Document() forest.Document {
	return forest.Document{
		Format:       forest.Format,
		Version:      forest.Version,
		NFeatures:    len(Names),
		Classes:      []int{0, 1},
		FeatureNames: append([]string(nil), Names...),
		Trees: []forest.Tree{{Nodes: []forest.Node{
			{Feature: 0, Threshold: SplitIssue, Left: 1, Right: 2},
			{Feature: forest.LeafFeature, Value: []float64{3, 1}},
			{Feature: forest.LeafFeature, Value: []float64{1, 3}},
		}}},
	}
}

// Stump decodes Document or fails the test
func Stump(t testing.TB) *forest.Forest {
	t.Helper()
	f, err := forest.New(Document())
	if err != nil {
		t.Fatalf("foresttest: %v", err)
	}
	return f
}
