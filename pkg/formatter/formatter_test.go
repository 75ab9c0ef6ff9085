package formatter

import "testing"

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"dot separator", "jane.doe@x.com", "Jane Doe"},
		{"underscore separator", "jane_doe@x.com", "Jane Doe"},
		{"hyphen separator", "jane-doe@x.com", "Jane Doe"},
		{"single token", "jane@x.com", "Jane"},
		{"mixed separators", "jane.doe_smith@x.com", "Jane Doe Smith"},
		{"no at sign", "janedoe", ""},
		{"empty local part", "@x.com", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayNameFromEmail(tt.email); got != tt.expected {
				t.Errorf("DisplayNameFromEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"boxer", "Boxer"},
		{"", ""},
		{"a", "A"},
		{"already Upper", "Already Upper"},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.expected {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
