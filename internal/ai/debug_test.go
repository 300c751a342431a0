package ai

import "testing"

func TestEnableDebugLogging(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	tests := []struct {
		name    string
		enabled bool
	}{
		{"enable", true},
		{"disable", false},
		{"enable again", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EnableDebugLogging(tt.enabled)
			if got := IsDebugEnabled(); got != tt.enabled {
				t.Errorf("IsDebugEnabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}
