package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	const alphabet = "abc123"

	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected length 32, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q outside the alphabet", char)
		}
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	value, err := RandomString(0, "abc")
	if err != nil || value != "" {
		t.Fatalf("expected an empty string, got %q / %v", value, err)
	}
}

func TestRandomStringEmptyAlphabet(t *testing.T) {
	if _, err := RandomString(8, ""); err == nil {
		t.Fatal("expected an error for an empty alphabet")
	}
}

func TestRandomPIN(t *testing.T) {
	pin, err := RandomPIN(6)
	if err != nil {
		t.Fatalf("random pin: %v", err)
	}
	if len(pin) != 6 {
		t.Fatalf("expected 6 digits, got %q", pin)
	}
	for _, char := range pin {
		if char < '0' || char > '9' {
			t.Fatalf("expected digits only, got %q", pin)
		}
	}
}
