package service

import (
	"fmt"
	"sort"

	"scotuspredict/internal/core/codebook"
	"scotuspredict/internal/services/codebook/domain"
)

type groupKey struct{ field, lang string }

// Apply layers stored labels over base. A field/lang group is accepted only when its positions
// are exactly 0..n-1 for the selector's n; anything else keeps the base labels.
func Apply(base *codebook.Codebook, rows []domain.LabelRow) (*codebook.Codebook, []domain.Rejection) {
	groups := map[groupKey][]domain.LabelRow{}
	var order []groupKey
	for _, r := range rows {
		k := groupKey{r.Field, r.Lang}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := base
	var rejected []domain.Rejection
	reject := func(k groupKey, format string, a ...any) {
		rejected = append(rejected, domain.Rejection{Field: k.field, Lang: k.lang, Reason: fmt.Sprintf(format, a...)})
	}

	for _, k := range order {
		g := groups[k]
		f, ok := base.Field(k.field)
		if !ok {
			reject(k, "unknown field")
			continue
		}
		if f.Kind != codebook.KindSelect {
			reject(k, "not a selector")
			continue
		}
		if n := f.Max + 1; len(g) != n {
			reject(k, "%d labels, want %d", len(g), n)
			continue
		}
		sort.Slice(g, func(i, j int) bool { return g[i].Position < g[j].Position })
		labels := make([]string, len(g))
		valid := true
		for i, r := range g {
			if r.Position != i || r.Label == "" {
				reject(k, "position %d out of sequence or empty", r.Position)
				valid = false
				break
			}
			labels[i] = r.Label
		}
		if !valid {
			continue
		}
		next, err := out.WithLabels(k.field, k.lang, labels)
		if err != nil {
			reject(k, "%v", err)
			continue
		}
		out = next
	}
	return out, rejected
}
