package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Sup3r$ecret" {
		t.Fatal("hash equals the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q is not a bcrypt hash", hash)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPassword(hash, "Sup3r$ecret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not-a-hash", "Sup3r$ecret") {
		t.Error("malformed hash accepted")
	}
}

func TestBurnPasswordCheck(t *testing.T) {
	// Only contract: it must not panic and must not validate anything.
	BurnPasswordCheck("anything at all")
}

func TestBurnPasswordCheckCostParity(t *testing.T) {
	// The pad must cost as much to compare as a real stored hash, otherwise
	// unknown emails answer measurably faster than wrong passwords.
	cost, err := bcrypt.Cost(dummyHash)
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != BcryptCost {
		t.Errorf("dummy hash cost = %d, want %d", cost, BcryptCost)
	}
}
