package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{"regular password", "12345678"},
		{"special characters", "p@ssw0rd!#$%"},
		{"long password", strings.Repeat("x", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash returned error: %v", err)
			}
			if hash == "" || hash == tt.password {
				t.Fatal("expected an opaque hash")
			}
			if !h.Verify(tt.password, hash) {
				t.Fatal("Verify rejected the original password")
			}
			if h.Verify(tt.password+"x", hash) {
				t.Fatal("Verify accepted a different password")
			}
		})
	}
}

func TestBcryptHasher_NonDeterministic(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("12345678")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("12345678")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatal("expected different salts to produce different hashes")
	}
	if !h.Verify("12345678", first) || !h.Verify("12345678", second) {
		t.Fatal("both hashes must still verify against the original password")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	// Out-of-range costs fall back to bcrypt's default.
	for _, cost := range []int{-1, 0, 100} {
		h := NewBcryptHasher(cost)
		if h.cost != bcrypt.DefaultCost {
			t.Fatalf("cost %d: expected fallback to default, got %d", cost, h.cost)
		}
	}
}
