package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCategories(t *testing.T) {
	cases := []struct {
		err     *Error
		status  int
		message string
	}{
		{BadRequest, http.StatusBadRequest, "Bad Request"},
		{UserNotFound, http.StatusNotFound, "User Not Found"},
		{Internal, http.StatusInternalServerError, "Internal Server Error"},
		{Database, http.StatusInternalServerError, "Could not connect to database"},
		{Migration, http.StatusInternalServerError, "Could not migrate database"},
	}

	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.message, tc.status, tc.err.Status)
		}
		if tc.err.Message != tc.message {
			t.Errorf("expected message %q, got %q", tc.message, tc.err.Message)
		}
	}
}

func TestWrap_PreservesCategory(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := UserNotFound.Wrap(cause)

	if !errors.Is(wrapped, UserNotFound) {
		t.Error("expected wrapped error to match its category")
	}

	if !errors.Is(wrapped, cause) {
		t.Error("expected wrapped error to expose its cause")
	}

	if errors.Is(wrapped, Internal) {
		t.Error("expected wrapped error not to match a different category")
	}
}

func TestFrom_KnownCategory(t *testing.T) {
	err := fmt.Errorf("handler: %w", BadRequest.Wrap(errors.New("empty field")))

	e := From(err)
	if e.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", e.Status)
	}
	if e.Message != "Bad Request" {
		t.Errorf("unexpected message: %s", e.Message)
	}
}

func TestFrom_UnknownErrorIsInternal(t *testing.T) {
	e := From(errors.New("something unexpected"))

	if e.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", e.Status)
	}
	if e.Message != "Internal Server Error" {
		t.Errorf("unexpected message: %s", e.Message)
	}
}

func TestError_IncludesCause(t *testing.T) {
	wrapped := Internal.Wrap(errors.New("boom"))
	if wrapped.Error() != "Internal Server Error: boom" {
		t.Errorf("unexpected error string: %s", wrapped.Error())
	}

	if Internal.Error() != "Internal Server Error" {
		t.Errorf("unexpected error string: %s", Internal.Error())
	}
}
