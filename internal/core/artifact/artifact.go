// Package artifact locates the classifier archive and decodes it into a forest
package artifact

import (
	"archive/zip"
	"bytes"
	"context"
	"path"

	"scotuspredict/internal/core/codebook"
	"scotuspredict/internal/core/forest"
	perr "scotuspredict/internal/platform/errors"
)

// DefaultEntry is the archive member holding the forest export
const DefaultEntry = "model.json"

var (
	// ErrArtifactMissing matches any error where the archive or its model entry is absent
	ErrArtifactMissing = perr.New(perr.ErrorCodeArtifactMissing, "model artifact missing")

	// ErrDeserialization matches any error where the artifact exists but cannot be decoded
	ErrDeserialization = perr.New(perr.ErrorCodeDeserialization, "model artifact unreadable")
)

// Source yields the raw archive bytes
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Describe() string
}

// Load fetches the archive from src and decodes entry into a forest
func Load(ctx context.Context, src Source, entry string) (*forest.Forest, error) {
	if entry == "" {
		entry = DefaultEntry
	}
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDeserialization, "%s is not a zip archive", src.Describe())
	}
	zf := findEntry(zr, entry)
	if zf == nil {
		return nil, perr.Newf(perr.ErrorCodeArtifactMissing, "%s has no entry %q", src.Describe(), entry)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDeserialization, "open %s", entry)
	}
	defer rc.Close()

	f, err := forest.Decode(rc)
	if err != nil {
		return nil, perr.WithOp(err, "artifact.Load")
	}
	if err := Compatible(f); err != nil {
		return nil, perr.WithOp(err, "artifact.Load")
	}
	return f, nil
}

// Compatible rejects a forest whose input width differs from the form's feature vector
func Compatible(f *forest.Forest) error {
	if n := f.NFeatures(); n != len(codebook.Order) {
		return perr.Newf(perr.ErrorCodeDeserialization, "model expects %d features, form provides %d", n, len(codebook.Order))
	}
	return nil
}

// findEntry prefers an exact name and falls back to a base-name match so nested layouts still load
func findEntry(zr *zip.Reader, name string) *zip.File {
	var base *zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.Name == name {
			return f
		}
		if base == nil && path.Base(f.Name) == name {
			base = f
		}
	}
	return base
}
