package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyAccessKey(t *testing.T) {
	hash, err := HashAccessKey("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashAccessKey failed: %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Fatalf("hash %q should contain the salt separator", hash)
	}

	match, err := VerifyAccessKey(hash, "correct-horse-battery")
	if err != nil {
		t.Fatalf("VerifyAccessKey failed: %v", err)
	}
	if !match {
		t.Error("the original key should verify")
	}

	match, err = VerifyAccessKey(hash, "wrong-key-entirely")
	if err != nil {
		t.Fatalf("VerifyAccessKey failed: %v", err)
	}
	if match {
		t.Error("a wrong key should not verify")
	}
}

func TestHashAccessKeyRejectsShortKeys(t *testing.T) {
	if _, err := HashAccessKey("short"); err == nil {
		t.Error("keys under 8 characters should be rejected")
	}
}

func TestHashAccessKeySalted(t *testing.T) {
	first, err := HashAccessKey("correct-horse-battery")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashAccessKey("correct-horse-battery")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("hashing the same key twice should produce different salts")
	}
}

func TestCompareAccessKeysMalformedHash(t *testing.T) {
	if CompareAccessKeys("not-a-valid-hash", "whatever-key") {
		t.Error("a malformed stored hash should never match")
	}
}
