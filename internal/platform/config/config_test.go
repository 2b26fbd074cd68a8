package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "scotuspredict/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	web := root.Prefix("CORE_WEB_")
	if got := web.key("PORT"); got != "CORE_WEB_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_WEB_PORT")
	}
	nested := root.Prefix("CORE_").Prefix("ARTIFACT_")
	if got := nested.key("PATH"); got != "CORE_ARTIFACT_PATH" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_ARTIFACT_PATH")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  scotuspredict ")
	if got := c.MustString("NAME"); got != "scotuspredict" {
		t.Fatalf("MustString = %q, want %q", got, "scotuspredict")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_SIZE", "  8 ")
	if got := c.MustInt("SIZE"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}
	t.Setenv("P_COLON", ":8080")
	if got := c.MustPort("COLON"); got != ":8080" {
		t.Fatalf("MustPort = %q, want %q", got, ":8080")
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

func TestHas(t *testing.T) {
	c := New().Prefix("H_")
	if c.Has("X") {
		t.Fatalf("Has on unset key")
	}
	t.Setenv("H_WS", "   ")
	if c.Has("WS") {
		t.Fatalf("whitespace counts as missing")
	}
	t.Setenv("H_X", "1")
	if !c.Has("X") {
		t.Fatalf("Has on set key")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " model.json ")
	if got := c.MayString("NAME", "x"); got != "model.json" {
		t.Fatalf("MayString value = %q, want %q", got, "model.json")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if got := c.MayBool("T", false); got != true {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if got := c.MayBool("BAD", false); got != false {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v, want %v", got, 150*time.Millisecond)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"a", "b"}
	if got := c.MayCSV("MISS", def); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "local", "local", "s3"); got != "local" {
		t.Fatalf("MayEnum default = %q, want %q", got, "local")
	}
	t.Setenv("E_SRC", "S3")
	if got := c.MayEnum("SRC", "local", "local", "s3"); got != "s3" {
		t.Fatalf("MayEnum folds to allowed spelling, got %q", got)
	}
	t.Setenv("E_BAD", "gcs")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "local", "local", "s3") })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("DOTENV_A=from-file\nDOTENV_B=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_B", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_A") })

	if err := LoadDotEnv(p, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	c := New().Prefix("DOTENV_")
	if got := c.MayString("A", ""); got != "from-file" {
		t.Fatalf("A = %q, want from-file", got)
	}
	if got := c.MayString("B", ""); got != "from-env" {
		t.Fatalf("existing env must win, got %q", got)
	}
}
