package errors

import (
	"slices"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"positive", "42", 42, false},
		{"negative", "-7", -7, false},
		{"zero", "0", 0, false},
		{"padded", "  15 ", 15, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"letters", "abc", 0, true},
		{"float", "1.5", 0, true},
		{"mixed", "12a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidInput) {
					t.Errorf("ParseValue(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	got, err := ParseValues("5, 3,8,,1,4,")
	if err != nil {
		t.Fatalf("ParseValues() error: %v", err)
	}
	want := []int{5, 3, 8, 1, 4}
	if !slices.Equal(got, want) {
		t.Errorf("ParseValues() = %v, want %v", got, want)
	}

	if _, err := ParseValues("1,two,3"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ParseValues() with text error = %v, want INVALID_INPUT", err)
	}

	if got, err := ParseValues(""); err != nil || len(got) != 0 {
		t.Errorf("ParseValues(\"\") = %v, %v; want empty, nil", got, err)
	}
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{10, false},
		{0, true},
		{-1, true},
		{11, true},
	}

	for _, tt := range tests {
		err := ValidateCount("nodes", tt.n, 10)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}
