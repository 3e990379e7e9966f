package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeValidation, "value below minimum")

	if err.Type != ErrorTypeValidation {
		t.Errorf("type: got %s", err.Type)
	}
	if err.Error() != "value below minimum" {
		t.Errorf("message: got %q", err.Error())
	}
	if err.Cause != nil {
		t.Error("New should not set a cause")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrorTypeNetwork, "fetching mail folders")

	if err.Error() != "fetching mail folders: connection refused" {
		t.Errorf("message: got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should unwrap")
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrorTypeValidation, "bad value").
		WithContext("field", "Limit Results").
		WithContext("value", "9999")

	ctx := GetContext(err)
	if ctx["field"] != "Limit Results" {
		t.Errorf("field context: got %v", ctx["field"])
	}
	if ctx["value"] != "9999" {
		t.Errorf("value context: got %v", ctx["value"])
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeTemplate, "no value bound for placeholder")

	if !IsType(err, ErrorTypeTemplate) {
		t.Error("IsType should match the error's type")
	}
	if IsType(err, ErrorTypeValidation) {
		t.Error("IsType should reject other types")
	}
	if IsType(stderrors.New("plain"), ErrorTypeTemplate) {
		t.Error("IsType should reject non-QueryErrors")
	}
}

func TestGetType(t *testing.T) {
	if GetType(New(ErrorTypeAssembly, "conflict")) != ErrorTypeAssembly {
		t.Error("GetType should return the error's type")
	}
	if GetType(stderrors.New("plain")) != ErrorTypeInternal {
		t.Error("GetType should default to internal for plain errors")
	}
}

func TestIs_MatchesOnType(t *testing.T) {
	err := Newf(ErrorTypeCatalog, "no such endpoint %q", "list-calendars")
	target := New(ErrorTypeCatalog, "")

	if !stderrors.Is(err, target) {
		t.Error("errors.Is should match QueryErrors by type")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "validation with field",
			err: New(ErrorTypeValidation, "value below minimum").
				WithContext("field", "Limit Results"),
			expected: "Invalid Limit Results: value below minimum",
		},
		{
			name: "template with placeholder",
			err: New(ErrorTypeTemplate, "no value bound").
				WithContext("placeholder", "number"),
			expected: "Filter template error ({number}): no value bound",
		},
		{
			name: "assembly with param",
			err: New(ErrorTypeAssembly, "conflicting values").
				WithContext("param", "$top"),
			expected: "Cannot assemble URL ($top): conflicting values",
		},
		{
			name:     "plain error passes through",
			err:      stderrors.New("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestDebugInfo(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(cause, ErrorTypeNetwork, "fetch failed").WithContext("url", "https://example.com")

	info := DebugInfo(err)
	if info["type"] != "network" {
		t.Errorf("type: got %v", info["type"])
	}
	if info["cause"] != "root cause" {
		t.Errorf("cause: got %v", info["cause"])
	}
}
