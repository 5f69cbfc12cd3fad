package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "a", false},
		{"empty", "", false},
		{"spaces", "hello world", false},
		{"quotes", `say "hi"`, false},
		{"newline", "line1\nline2", false},
		{"tab", "a\tb", false},
		{"unicode", "Åland", false},

		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"carriage return", "foo\rbar", true},
		{"too long", strings.Repeat("x", 1025), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("ValidateLabel(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "out", false},
		{"nested", "graphs/out", false},
		{"absolute", "/tmp/out", false},

		{"empty", "", true},
		{"directory", "graphs/", true},
		{"control char", "out\x07", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"name", "red", false},
		{"x11 name with digit", "grey50", false},
		{"hex", "#ff0000", false},
		{"hex alpha", "#ff000080", false},
		{"hsv", "0.650 0.700 0.700", false},

		{"empty", "", true},
		{"quote injection", `red" style="bold`, true},
		{"short hex", "#fff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePenWidth(t *testing.T) {
	if err := ValidatePenWidth(0); err != nil {
		t.Errorf("ValidatePenWidth(0) error = %v", err)
	}
	if err := ValidatePenWidth(3); err != nil {
		t.Errorf("ValidatePenWidth(3) error = %v", err)
	}
	if err := ValidatePenWidth(-1); err == nil {
		t.Error("ValidatePenWidth(-1) should fail")
	}
}
