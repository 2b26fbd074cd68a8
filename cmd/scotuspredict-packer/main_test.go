package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/core/forest/foresttest"
)

func TestPack_RoundTripsThroughLoad(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(foresttest.Document())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	f, err := pack(bytes.NewReader(raw), &buf, "custom.json")
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if f.Trees() != 1 || f.NFeatures() != 7 {
		t.Fatalf("forest = %d trees, %d features", f.Trees(), f.NFeatures())
	}

	path := filepath.Join(t.TempDir(), "model.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := artifact.Load(context.Background(), artifact.Local{Path: path}, "custom.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	class, _, err := loaded.Predict([]float64{140070, 51, 29, 11, 6, 1704, 0})
	if err != nil || class != 1 {
		t.Fatalf("predict = %d, %v", class, err)
	}
}

func TestPack_RejectsInvalidExport(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":      "pickle bytes",
		"unknown field": `{"format":"scotuspredict.forest","version":1,"extra":true}`,
		"no trees":      `{"format":"scotuspredict.forest","version":1,"n_features":7,"classes":[0,1],"trees":[]}`,
		"wrong width":   `{"format":"scotuspredict.forest","version":1,"n_features":5,"classes":[0,1],"trees":[{"nodes":[{"feature":-1,"threshold":0,"left":0,"right":0,"value":[1,1]}]}]}`,
	}
	for name, body := range cases {
		var buf bytes.Buffer
		if _, err := pack(strings.NewReader(body), &buf, ""); !errors.Is(err, artifact.ErrDeserialization) {
			t.Fatalf("%s: err = %v", name, err)
		}
		if buf.Len() != 0 {
			t.Fatalf("%s: wrote %d bytes", name, buf.Len())
		}
	}
}
