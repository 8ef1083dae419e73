package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pousada/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "NotFound", err: failure.NotFound("thing not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already there"), code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}

func TestBadRequestFromFields(t *testing.T) {
	fields := []failure.FieldError{
		{Field: "check_in", Message: "check-in date is invalid"},
		{Field: "room_id", Message: "room not found"},
	}

	err := failure.BadRequestFromFields(fields)

	if got := failure.GetCode(err); got != http.StatusBadRequest {
		t.Errorf("GetCode = %d, want %d", got, http.StatusBadRequest)
	}

	if err.Error() != "check-in date is invalid" {
		t.Errorf("leading message should come from the first field, got %q", err.Error())
	}

	got := failure.GetFields(err)
	if len(got) != 2 {
		t.Fatalf("GetFields returned %d fields, want 2", len(got))
	}

	if got[1].Field != "room_id" {
		t.Errorf("second field = %q, want room_id", got[1].Field)
	}
}

func TestGetFieldsOnWrappedError(t *testing.T) {
	inner := failure.BadRequestFromFields([]failure.FieldError{{Field: "f", Message: "m"}})
	wrapped := fmt.Errorf("handling request: %w", inner)

	if len(failure.GetFields(wrapped)) != 1 {
		t.Error("GetFields should see through wrapping")
	}

	if failure.GetCode(wrapped) != http.StatusBadRequest {
		t.Error("GetCode should see through wrapping")
	}
}

func TestGetCodeUnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetCode on plain error = %d, want 500", got)
	}

	if failure.GetFields(errors.New("plain")) != nil {
		t.Error("GetFields on plain error should be nil")
	}
}
