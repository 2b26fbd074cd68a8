package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"scotuspredict/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dsn = "postgres://u:p@db:5432/scotus?sslmode=disable"

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()
	if _, err := Open(context.Background(), Config{URL: "://"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("no pool")
	})
	if _, err := Open(context.Background(), Config{URL: dsn}, nil, nil); err == nil {
		t.Fatalf("expected pool error")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		return &pgxpool.Pool{}, nil
	})

	cfg := Config{URL: dsn, AppName: "scotuspredict", MaxConns: 3, SlowMs: 50}
	p, err := Open(context.Background(), cfg, nil, func(pc *pgxpool.Config) {
		pc.MaxConnIdleTime = time.Minute
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if seen.MaxConns != 3 || seen.MaxConnIdleTime != time.Minute {
		t.Fatalf("pool config not applied: max=%d idle=%s", seen.MaxConns, seen.MaxConnIdleTime)
	}
	if seen.ConnConfig.RuntimeParams["application_name"] != "scotuspredict" {
		t.Fatalf("application_name = %q", seen.ConnConfig.RuntimeParams["application_name"])
	}
	if p.SlowMs != 50 || p.Pool == nil {
		t.Fatalf("unexpected PG: %+v", p)
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()
	var p *PG
	p.Close()
	(&PG{}).Close()
}
