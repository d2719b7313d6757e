package display

import (
	"testing"

	"go.uber.org/zap"
)

// TestThemeByName verifies lookup and the dark fallback for unknown
// names.
func TestThemeByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Dark", input: "dark", expected: "dark"},
		{name: "Light", input: "light", expected: "light"},
		{name: "Unknown Falls Back To Dark", input: "solarized", expected: "dark"},
		{name: "Empty Falls Back To Dark", input: "", expected: "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := ThemeByName(zap.NewNop(), tt.input)
			if theme.Name != tt.expected {
				t.Errorf("ThemeByName(%q): expected '%s', got '%s'", tt.input, tt.expected, theme.Name)
			}
			if theme.Background == "" || theme.Primary == "" {
				t.Error("theme colors must be populated")
			}
		})
	}
}
