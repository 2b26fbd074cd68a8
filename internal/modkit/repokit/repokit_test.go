package repokit

import (
	"testing"

	"scotuspredict/internal/platform/testkit"
)

type nopQ struct{ Queryer }

type labelsRepo struct{ q Queryer }

func TestBindFunc_And_MustBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[labelsRepo](func(q Queryer) labelsRepo { return labelsRepo{q: q} })
	q := nopQ{}
	if got := MustBind[labelsRepo](b, q); got.q != q {
		t.Fatal("queryer not bound")
	}
	testkit.MustPanic(t, func() { _ = MustBind[labelsRepo](b, nil) })
}
