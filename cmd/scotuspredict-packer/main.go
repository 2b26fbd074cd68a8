// Command scotuspredict-packer validates a forest export and writes the model archive
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/core/forest"
)

func main() {
	var (
		in      = flag.String("in", "", "forest json export, or '-' for stdin")
		out     = flag.String("out", "model.zip", "archive path")
		entry   = flag.String("entry", artifact.DefaultEntry, "archive member name")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *in == "" {
		_, _ = fmt.Fprintln(os.Stderr, "usage: scotuspredict-packer -in forest.json [-out model.zip] [-entry model.json]")
		os.Exit(2)
	}

	var r io.Reader = os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		must(err)
		defer f.Close()
		r = f
	}

	var buf bytes.Buffer
	fst, err := pack(r, &buf, *entry)
	must(err)

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		must(err)
	}
	must(os.WriteFile(*out, buf.Bytes(), 0o644))
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d bytes, %d trees, %d features)\n", *out, buf.Len(), fst.Trees(), fst.NFeatures())
	}
}

// pack decodes and validates the export, then writes it as the single archive entry
func pack(r io.Reader, w io.Writer, entry string) (*forest.Forest, error) {
	f, err := forest.Decode(r)
	if err != nil {
		return nil, err
	}
	if err := artifact.Compatible(f); err != nil {
		return nil, err
	}
	if err := artifact.WriteArchive(w, entry, f); err != nil {
		return nil, err
	}
	return f, nil
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
