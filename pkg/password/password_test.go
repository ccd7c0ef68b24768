package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h == "s3cret" || !strings.HasPrefix(h, "$2") {
		t.Fatalf("not a bcrypt hash: %q", h)
	}
	if !Verify("s3cret", h) {
		t.Fatal("Verify should accept the original password")
	}
	if Verify("wrong", h) {
		t.Fatal("Verify should reject a different password")
	}
}

func TestHash_DefaultCost(t *testing.T) {
	if testing.Short() {
		t.Skip("bcrypt default cost is slow")
	}
	h, err := Hash("x", 0)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(h))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != DefaultCost {
		t.Fatalf("cost = %d, want %d", cost, DefaultCost)
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	if Verify("x", "not-a-hash") {
		t.Fatal("garbage hash must not verify")
	}
}
