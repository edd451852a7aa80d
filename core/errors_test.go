package core

import (
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestErrorFactories_CarryTextCodes(t *testing.T) {
	cases := []struct {
		err      *goerrors.Error
		textCode string
		category goerrors.Category
	}{
		{inputTypeError("bad"), ErrorInputType, goerrors.CategoryBadInput},
		{formatError("bad"), ErrorFormat, goerrors.CategoryBadInput},
		{incorrectDateError("bad"), ErrorIncorrectDate, goerrors.CategoryValidation},
		{checksumError("bad"), ErrorChecksum, goerrors.CategoryValidation},
		{contradictionError("bad"), ErrorAgeSeparatorContradiction, goerrors.CategoryValidation},
		{futureDateError("bad"), ErrorBackToTheFuture, goerrors.CategoryValidation},
	}
	for _, tc := range cases {
		if tc.err.TextCode != tc.textCode {
			t.Fatalf("expected text code %s, got %s", tc.textCode, tc.err.TextCode)
		}
		if tc.err.Category != tc.category {
			t.Fatalf("%s: expected category %s, got %s", tc.textCode, tc.category, tc.err.Category)
		}
		if tc.err.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 envelope, got %d", tc.textCode, tc.err.Code)
		}
	}
}

func TestReason(t *testing.T) {
	if Reason(nil) != "" {
		t.Fatalf("nil error has no reason")
	}
	if got := Reason(checksumError("bad")); got != ErrorChecksum {
		t.Fatalf("expected %s, got %s", ErrorChecksum, got)
	}
	if got := Reason(fmt.Errorf("plain")); got != ErrorInternal {
		t.Fatalf("expected internal fallback, got %s", got)
	}
}

func TestDefaultErrorMapper_PreservesEnvelope(t *testing.T) {
	mapped := defaultErrorMapper(checksumError("bad"))
	if mapped == nil || mapped.TextCode != ErrorChecksum {
		t.Fatalf("expected checksum envelope to survive mapping, got %+v", mapped)
	}
	mapped = defaultErrorMapper(fmt.Errorf("plain failure"))
	if mapped == nil || mapped.Code == 0 {
		t.Fatalf("expected mapped envelope with status code, got %+v", mapped)
	}
	if defaultErrorMapper(nil) != nil {
		t.Fatalf("nil maps to nil")
	}
}
