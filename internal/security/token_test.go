package security

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{name: "negative length", length: -1, wantErr: true},
		{name: "zero length", length: 0, wantErr: true},
		{name: "short token", length: 8, wantErr: false},
		{name: "long token", length: 64, wantErr: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := GenerateToken(test.length)
			if test.wantErr {
				if err == nil {
					t.Fatalf("GenerateToken(%d) expected error, got nil", test.length)
				}
				return
			}

			if err != nil {
				t.Fatalf("GenerateToken(%d) returned error: %v", test.length, err)
			}
			if len(got) != test.length {
				t.Fatalf("GenerateToken(%d) len = %d, want %d", test.length, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(tokenAlphabet, char) {
					t.Fatalf("GenerateToken(%d) produced char %q outside alphabet", test.length, char)
				}
			}
		})
	}
}

func TestGenerateTokenVaries(t *testing.T) {
	t.Parallel()

	first, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken(32) returned error: %v", err)
	}
	second, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken(32) returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two generated tokens are identical: %q", first)
	}
}
