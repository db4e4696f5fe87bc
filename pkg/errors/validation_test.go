package errors

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "octocat", false},
		{"with hyphen", "mona-lisa", false},
		{"digits", "user123", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", 39), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 40), true},
		{"leading hyphen", "-octocat", true},
		{"trailing hyphen", "octocat-", true},
		{"double hyphen", "octo--cat", true},
		{"underscore", "octo_cat", true},
		{"slash", "octo/cat", true},
		{"path traversal", "..", true},
		{"newline", "octo\ncat", true},
		{"space", "octo cat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidUsername) {
				t.Errorf("ValidateUsername(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidUsername)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "assets/github-stats.svg", false},
		{"absolute", "/tmp/stats.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "foo\x00.svg", true},
		{"control char", "foo\x01.svg", true},
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

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://api.github.com", false},
		{"http://localhost:8080", false},
		{"", true},
		{"ftp://example.com", true},
		{"api.github.com", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
