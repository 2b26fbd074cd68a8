package forest

import (
	perr "scotuspredict/internal/platform/errors"
)

func invalid(format string, a ...any) error {
	return perr.Newf(perr.ErrorCodeDeserialization, "forest: "+format, a...)
}

// Validate checks the header and the structure of every tree
func Validate(doc Document) error {
	if doc.Format != Format {
		return invalid("unknown format %q", doc.Format)
	}
	if doc.Version != Version {
		return invalid("unsupported version %d", doc.Version)
	}
	if doc.NFeatures <= 0 {
		return invalid("n_features must be positive")
	}
	if len(doc.Classes) < 2 {
		return invalid("need at least two classes, got %d", len(doc.Classes))
	}
	if n := len(doc.FeatureNames); n != 0 && n != doc.NFeatures {
		return invalid("%d feature names for %d features", n, doc.NFeatures)
	}
	if len(doc.Trees) == 0 {
		return invalid("no trees")
	}
	for ti, t := range doc.Trees {
		if err := validateTree(ti, t, doc.NFeatures, len(doc.Classes)); err != nil {
			return err
		}
	}
	return nil
}

func validateTree(ti int, t Tree, nFeatures, nClasses int) error {
	if len(t.Nodes) == 0 {
		return invalid("tree %d: empty", ti)
	}
	for i, n := range t.Nodes {
		if n.Leaf() {
			if len(n.Value) != nClasses {
				return invalid("tree %d node %d: %d leaf values for %d classes", ti, i, len(n.Value), nClasses)
			}
			for _, v := range n.Value {
				if v < 0 {
					return invalid("tree %d node %d: negative leaf value", ti, i)
				}
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return invalid("tree %d node %d: feature %d out of range", ti, i, n.Feature)
		}
		// forward-only children make every walk terminate
		if n.Left <= i || n.Right <= i || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
			return invalid("tree %d node %d: children %d/%d must point forward", ti, i, n.Left, n.Right)
		}
	}
	return nil
}
