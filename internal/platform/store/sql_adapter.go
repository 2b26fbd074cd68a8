package store

import (
	"context"
	"errors"
	"time"

	"scotuspredict/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgPool is the slice of pgxpool the adapter uses
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgAdapter implements RowQuerier over a pool and emits trace events per statement
type pgAdapter struct {
	pool   pgPool
	close  func()
	tracer pg.QueryTracer
	slowMs int
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{pool: p.Pool, close: p.Close, tracer: p.Tracer, slowMs: p.SlowMs}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.pool == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error {
	if a.close != nil {
		a.close()
	}
	return nil
}

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.pool.Exec(ctx, sql, args...)
	a.emit(ctx, sql, args, start, err)
	return ct, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.pool.Query(ctx, sql, args...)
	a.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// QueryRow emits once Scan returns so the scan error is traced
func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return row{
		r: a.pool.QueryRow(ctx, sql, args...),
		after: func(err error) {
			a.emit(ctx, sql, args, start, err)
		},
	}
}

func (a *pgAdapter) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if a.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	a.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      a.slowMs >= 0 && us >= int64(a.slowMs)*1000,
	})
}

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}
