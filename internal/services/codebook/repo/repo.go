// Package repo provides postgres access for codebook label overrides
package repo

import (
	"context"

	"scotuspredict/internal/modkit/repokit"
	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/store"
	"scotuspredict/internal/services/codebook/domain"
)

// Schema creates the override table; positions are the selector values
const Schema = `
create table if not exists codebook_labels (
	field    text not null,
	lang     text not null,
	position int  not null,
	label    text not null,
	primary key (field, lang, position)
)`

// Repo defines the repository contract for label overrides
type Repo interface {
	Labels(ctx context.Context) ([]domain.LabelRow, error)
}

type (
	// PG implements Repo on Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Labels(ctx context.Context) ([]domain.LabelRow, error) {
	const sql = `
select field, lang, position, label
from codebook_labels
order by field, lang, position
`
	rows, err := store.Many(ctx, r.q, func(row store.Row) (domain.LabelRow, error) {
		var lr domain.LabelRow
		err := row.Scan(&lr.Field, &lr.Lang, &lr.Position, &lr.Label)
		return lr, err
	}, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "codebook labels")
	}
	return rows, nil
}
