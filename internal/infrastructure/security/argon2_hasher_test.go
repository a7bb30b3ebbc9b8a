package security

import (
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
)

var testParams = &argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2Hasher(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	hash, err := h.Hash("segredo123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") || strings.Contains(hash, "segredo123") {
		t.Fatalf("unexpected hash: %s", hash)
	}

	ok, err := h.Verify("segredo123", hash)
	if err != nil || !ok {
		t.Fatalf("expected match, got %v %v", ok, err)
	}
	ok, err = h.Verify("outra", hash)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got %v %v", ok, err)
	}

	again, err := h.Hash("segredo123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if again == hash {
		t.Fatalf("expected a fresh salt per hash")
	}
}

func TestArgon2Hasher_DefaultParams(t *testing.T) {
	if h := NewArgon2Hasher(nil); h.params != DefaultParams {
		t.Fatalf("expected default params")
	}
}

func TestArgon2Hasher_InvalidHash(t *testing.T) {
	if _, err := NewArgon2Hasher(testParams).Verify("x", "não-é-hash"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
