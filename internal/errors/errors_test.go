package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessageFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(TypeInput, "capacity must be positive"),
			want: "[INPUT_ERROR] capacity must be positive",
		},
		{
			name: "with cause",
			err:  Wrap(TypeParsing, "bad catalog file", stderrors.New("unexpected token")),
			want: "[PARSING_ERROR] bad catalog file: unexpected token",
		},
		{
			name: "formatted",
			err:  Newf(TypeOutOfRange, "capacity %s outside range", "250"),
			want: "[OUT_OF_RANGE] capacity 250 outside range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTypeUnwrapsWrappedErrors(t *testing.T) {
	inner := UnknownConfiguration("premium")
	outer := fmt.Errorf("quote failed: %w", inner)

	if !IsType(outer, TypeUnknownConfiguration) {
		t.Error("IsType should see through fmt.Errorf wrapping")
	}
	if IsType(outer, TypeEmptyTable) {
		t.Error("IsType matched the wrong type")
	}
	if IsType(stderrors.New("plain"), TypeInput) {
		t.Error("IsType should be false for untyped errors")
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(EmptyTable("4h")); got != TypeEmptyTable {
		t.Errorf("TypeOf = %s, want %s", got, TypeEmptyTable)
	}
	if got := TypeOf(stderrors.New("plain")); got != TypeInternal {
		t.Errorf("TypeOf untyped = %s, want %s", got, TypeInternal)
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := Internal("catalog load failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestDomainConstructorsCarryContext(t *testing.T) {
	err := OutOfRange("2h", "250", "20", "60")

	if err.Type != TypeOutOfRange {
		t.Fatalf("Type = %s, want %s", err.Type, TypeOutOfRange)
	}
	if err.Context["configuration"] != "2h" {
		t.Errorf("missing configuration context, got %v", err.Context)
	}
	for _, key := range []string{"requested_kwh", "min_kwh", "max_kwh"} {
		if _, ok := err.Context[key]; !ok {
			t.Errorf("missing %s context, got %v", key, err.Context)
		}
	}
	if !strings.Contains(err.Message, "[20, 60]") {
		t.Errorf("message should name the table range, got %q", err.Message)
	}
}
