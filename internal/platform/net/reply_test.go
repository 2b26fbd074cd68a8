package net_test

import (
	stderrs "errors"
	"net/http"
	"testing"

	perr "scotuspredict/internal/platform/errors"
	pnet "scotuspredict/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"label": "liberal"}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("wire status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q", w.RequestID)
	}
	if got := w.Data.(map[string]any)["label"]; got != "liberal" {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestError_NilFallsBackToOK(t *testing.T) {
	status, w := pnet.Error(nil, "r")
	if status != http.StatusOK || w.Error != "" || w.Code != 0 {
		t.Fatalf("nil error should be OK, got %d %+v", status, w)
	}
}

func TestError_ProjectErrorMapped(t *testing.T) {
	err := perr.WithField(perr.Validationf("value out of range"), "natural_court")
	status, w := pnet.Error(err, "r-2")
	if status != http.StatusBadRequest || w.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if w.Code != perr.ErrorCodeValidation || w.Error != "value out of range" || w.Field != "natural_court" {
		t.Fatalf("wire mismatch: %+v", w)
	}
	if w.RequestID != "r-2" {
		t.Fatalf("req id %q", w.RequestID)
	}
}

func TestError_ForeignErrorIsInternal(t *testing.T) {
	status, w := pnet.Error(stderrs.New("boom"), "")
	if status != http.StatusInternalServerError || w.Code != perr.ErrorCodeUnknown || w.Error != "boom" {
		t.Fatalf("foreign error mapping: %d %+v", status, w)
	}
}
