package session

import (
	"strings"
	"testing"
)

func TestRemoteIdentity(t *testing.T) {
	id := Remote("ada")

	if id.Name != "ada" {
		t.Errorf("Expected name ada, got %q", id.Name)
	}
	if !id.Remote {
		t.Error("Remote identity should have Remote set")
	}
}

func TestAnonymousDisplay(t *testing.T) {
	id := Anonymous()

	if id.Name != "" {
		t.Errorf("Anonymous identity should have no name, got %q", id.Name)
	}
	if id.Display() != "player" {
		t.Errorf("Expected display fallback player, got %q", id.Display())
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "ada", "ada"},
		{"whitespace trimmed", "  ada \n", "ada"},
		{"control chars stripped", "a\x00d\x1ba\x7f", "ada"},
		{"empty", "", ""},
		{"unicode kept", "björk", "björk"},
		{"long name capped", strings.Repeat("x", 100), strings.Repeat("x", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanName(tt.input)
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
