package errors

import (
	"strings"
	"testing"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		wantErr bool
	}{
		{"valid description", "A 1200 sq ft house with 3 bedrooms and 2 bathrooms", false},
		{"multiline is fine", "A small cabin.\nOne bedroom, one bathroom.", false},
		{"empty", "", true},
		{"whitespace only", "   \n\t  ", true},
		{"control characters", "house\x00plan", true},
		{"too long", strings.Repeat("a", MaxDescriptionLength+1), true},
		{"exactly max length", strings.Repeat("a", MaxDescriptionLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.desc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDescription() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateModelName(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr bool
	}{
		{"gemini flash", "gemini-2.5-flash", false},
		{"older model", "gemini-1.5-flash", false},
		{"empty", "", true},
		{"uppercase", "Gemini-Flash", true},
		{"spaces", "gemini 2.5", true},
		{"leading dash", "-gemini", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelName(tt.model)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModelName(%q) error = %v, wantErr %v", tt.model, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative path", "floor_plan.png", false},
		{"nested path", "out/plans/house.png", false},
		{"absolute path", "/tmp/plan.png", false},
		{"empty", "", true},
		{"null byte", "plan\x00.png", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
