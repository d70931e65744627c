package util

import "testing"

func TestStripHash(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "#3366cc", want: "3366cc"},
		{input: "3366cc", want: "3366cc"},
		{input: "##3366cc", want: "#3366cc"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := StripHash(tt.input); got != tt.want {
			t.Errorf("StripHash(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
