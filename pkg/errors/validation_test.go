package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateViewID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "title", false},
		{"valid with dash", "title-label", false},
		{"valid with dot", "card.title", false},
		{"valid with colon", "card:title", false},
		{"valid uuid", "4b0c3c02-6b0e-4a6a-9f2e-1f7f6f1f5d10", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"space", "my view", true},
		{"tab", "my\tview", true},
		{"leading dash", "-view", true},
		{"slash", "a/b", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidView) {
				t.Errorf("ValidateViewID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidView)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 320, false},
		{"fraction", 0.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	if err := ValidateCoordinate("x", -20); err != nil {
		t.Errorf("negative coordinate should be valid: %v", err)
	}
	if err := ValidateCoordinate("x", math.Inf(-1)); err == nil {
		t.Error("infinite coordinate should be rejected")
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "examples/card.toml", false},
		{"absolute", "/tmp/card.toml", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "card\x00.toml", true},
		{"trailing space", "card.toml ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
