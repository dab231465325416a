package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "scene not found",
			},
			want: "scene not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to render color map",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to render color map: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("room 0x%08X not found", 0x02E00000)
	if err.Code != ErrCodeNotFound {
		t.Errorf("NotFoundf().Code = %v, want %v", err.Code, ErrCodeNotFound)
	}
	if err.Message != "room 0x02E00000 not found" {
		t.Errorf("NotFoundf().Message = %v", err.Message)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("start", "must be a decimal VROM offset")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "start" {
		t.Errorf("ValidationField().Field = %v, want start", err.Field)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(cause, ErrCodeUnavailable, "fetch %s", "/api/rom")

	if err.Code != ErrCodeUnavailable {
		t.Errorf("Wrapf().Code = %v, want %v", err.Code, ErrCodeUnavailable)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrapf() should preserve the cause")
	}
	if err.Error() != "fetch /api/rom: connection refused" {
		t.Errorf("Wrapf().Error() = %v", err.Error())
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "message"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NotFoundf("x"), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("outer: %w", NotFoundf("x")), IsNotFound, true},
		{"validation is not not found", Validationf("x"), IsNotFound, false},
		{"validation", Validationf("bad %s", "query"), IsValidation, true},
		{"unavailable", Wrap(errors.New("down"), ErrCodeUnavailable, "api"), IsUnavailable, true},
		{"timeout", Wrap(context.DeadlineExceeded, ErrCodeTimeout, "api"), IsTimeout, true},
		{"canceled", Wrap(context.Canceled, ErrCodeCanceled, "api"), IsCanceled, true},
		{"plain error", errors.New("plain"), IsUnavailable, false},
		{"nil", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Validationf("x")); got != ErrCodeValidation {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeValidation)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestGetField(t *testing.T) {
	if got := GetField(fmt.Errorf("w: %w", ValidationField("query", "bad"))); got != "query" {
		t.Errorf("GetField() = %v, want query", got)
	}
	if got := GetField(Internal("x")); got != "" {
		t.Errorf("GetField() = %v, want empty", got)
	}
}

func TestWrapContext(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"canceled", context.Canceled, ErrCodeCanceled},
		{"deadline", fmt.Errorf("render: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"other", errors.New("png encoder"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapContext(tt.err, ErrCodeInternal, "color map")
			if err.Code != tt.want {
				t.Errorf("WrapContext().Code = %v, want %v", err.Code, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("WrapContext() should preserve the cause")
			}
		})
	}

	if WrapContext(nil, ErrCodeInternal, "x") != nil {
		t.Error("WrapContext(nil) should be nil")
	}
}

func TestUnavailablef(t *testing.T) {
	err := Unavailablef("api %d%% down", 50)
	if err.Code != ErrCodeUnavailable || err.Message != "api 50% down" {
		t.Errorf("Unavailablef() = %+v", err)
	}
}
