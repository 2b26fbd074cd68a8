package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"42P01", ErrorCodeNotFound},
		{"42703", ErrorCodeNotFound},
		{"22P02", ErrorCodeInvalidArgument},
		{"42501", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"57P01", ErrorCodeUnavailable},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestPredicatesSeeThroughWraps(t *testing.T) {
	err := fmt.Errorf("load labels: %w", pg("42P01"))
	if !IsUndefinedTable(err) {
		t.Fatalf("IsUndefinedTable should unwrap")
	}
	if IsConnectionUnavailable(err) {
		t.Fatalf("undefined table is not a connection error")
	}
	if !IsConnectionUnavailable(pg("57P03")) {
		t.Fatalf("57P03 should be connection unavailable")
	}
	if _, ok := ExtractPgError(stderrs.New("x")); ok {
		t.Fatalf("ExtractPgError on foreign error")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}
	if got := FromPostgres(pg("42P01"), "codebook_labels"); CodeOf(got) != ErrorCodeNotFound {
		t.Fatalf("FromPostgres code = %v", CodeOf(got))
	}
	if got := FromPostgresf(stderrs.New("conn reset"), "query %s", "labels"); CodeOf(got) != ErrorCodeDB || got.Error() != "query labels: conn reset" {
		t.Fatalf("FromPostgresf fallback = %v %q", CodeOf(got), got.Error())
	}
}
