package artifact

import (
	"context"
	"errors"
	"io/fs"
	"os"

	perr "scotuspredict/internal/platform/errors"
)

// Local reads the archive from the filesystem
type Local struct {
	Path string
}

// Fetch reads the whole archive
func (l Local) Fetch(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, perr.Wrapf(err, perr.ErrorCodeArtifactMissing, "artifact %s not found", l.Path)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDeserialization, "read %s", l.Path)
	}
	return b, nil
}

// Describe names the source in logs and meta output
func (l Local) Describe() string { return "file:" + l.Path }
