package module

import (
	"strings"
	"testing"

	phttp "scotuspredict/internal/platform/net/http"
)

// Labeler is a port shape used only by these tests
type Labeler interface{ Label(i int) string }

type labels []string

func (l labels) Label(i int) string { return l[i] }

type fakeModule struct {
	name    string
	ports   any
	mounted bool
}

func (m *fakeModule) MountRoutes(phttp.Router) { m.mounted = true }
func (m *fakeModule) Ports() any               { return m.ports }
func (m *fakeModule) Name() string             { return m.name }

var _ Module = (*fakeModule)(nil)

func TestHasPorts(t *testing.T) {
	t.Parallel()
	if HasPorts(nil) {
		t.Fatal("nil module has no ports")
	}
	if HasPorts(&fakeModule{}) {
		t.Fatal("nil ports should report false")
	}
	if !HasPorts(&fakeModule{ports: labels{"a"}}) {
		t.Fatal("non-nil ports should report true")
	}
}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type Bundle struct {
		Count  int
		Labels Labeler
	}
	type hidden struct{ labels Labeler }

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", labels{"liberal", "conservative"}, true},
		{"struct field", Bundle{Count: 2, Labels: labels{"x", "y"}}, true},
		{"struct pointer", &Bundle{Labels: labels{"x"}}, true},
		{"unexported field", hidden{labels: labels{"x"}}, false},
		{"scalar", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[Labeler](&fakeModule{name: "codebook", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Label(0) == "" {
				t.Fatalf("empty label from resolved port")
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	m := &fakeModule{name: "codebook", ports: labels{"first"}}
	if got := MustPortsOf[Labeler](m).Label(0); got != "first" {
		t.Fatalf("got %q", got)
	}

	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "codebook") {
			t.Fatalf("panic should name the module, got %v", r)
		}
	}()
	_ = MustPortsOf[Labeler](&fakeModule{name: "codebook"})
}
