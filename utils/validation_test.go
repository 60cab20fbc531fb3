package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+1234567890", true},
		{"+1 (234) 567-890", true},
		{"1234567890", true},
		{"+0123456789", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range cases {
		if got := ValidatePhone(tt.phone); got != tt.valid {
			t.Fatalf("ValidatePhone(%q)=%v, want %v", tt.phone, got, tt.valid)
		}
	}
}
