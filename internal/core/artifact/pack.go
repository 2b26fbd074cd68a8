package artifact

import (
	"archive/zip"
	"io"

	"scotuspredict/internal/core/forest"
)

// WriteArchive writes f as the single entry of a zip archive
func WriteArchive(w io.Writer, entry string, f *forest.Forest) error {
	if entry == "" {
		entry = DefaultEntry
	}
	zw := zip.NewWriter(w)
	ew, err := zw.Create(entry)
	if err != nil {
		return err
	}
	if err := f.Encode(ew); err != nil {
		return err
	}
	return zw.Close()
}
