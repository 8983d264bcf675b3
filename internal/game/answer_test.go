package game

import (
	"errors"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"  7 ", 7, false},
		{"-3", -3, false},
		{"+5", 5, false},
		{"2.5", 2.5, false},
		{"2,5", 2.5, false},
		{"007", 7, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"1,2,3", 0, true},
		{"-", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"-Infinity", 0, true},
		{"1e999", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAnswer(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("ParseAnswer(%q) error = %v, want ErrInvalidAnswer", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnswer(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		4:    "4",
		-12:  "-12",
		2.5:  "2.5",
		0.25: "0.25",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
