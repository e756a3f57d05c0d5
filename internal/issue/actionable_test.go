// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "create module file"},
			want: "failed to create module file",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "create module file", Resource: "src/parser.rs"},
			want: "failed to create module file: src/parser.rs",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "register module in parent",
				Resource:  "src/lib.rs",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to register module in parent: src/lib.rs: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := WrapWithOperation(cause, "create module file")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := NewErrorContext().
		WithOperation("write test file").
		WithResource("src/parser_test.rs").
		WithSuggestion("Free up disk space").
		Wrap(cause).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "failed to write test file") {
		t.Errorf("Format(false) missing message: %q", plain)
	}
	if !strings.Contains(plain, "• Free up disk space") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include error chain: %q", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "disk full") {
		t.Errorf("Format(true) missing cause: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}

	err := NewErrorContext().WithOperation("resolve module path").Build()
	if err == nil || err.Operation != "resolve module path" {
		t.Errorf("Build() = %+v, want operation set", err)
	}
}

func TestWrapHelpers_NilErr(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "op") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}
