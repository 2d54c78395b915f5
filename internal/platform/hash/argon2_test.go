package hash_test

import (
	"errors"
	"strings"
	"testing"

	"comanda/internal/config"
	"comanda/internal/platform/hash"
)

func newTestHasher() *hash.Argon2Hasher {
	cfg := &config.Argon2{
		Memory:     8192,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(cfg, "test-pepper")
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hashed, err := hasher.Hash("s3cr3t")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if !strings.HasPrefix(hashed, "$argon2id$") {
		t.Errorf("Hash() = %q, want prefix: %q", hashed, "$argon2id$")
	}

	ok, err := hasher.Verify("s3cr3t", hashed)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if !ok {
		t.Error("Verify() = false, want: true")
	}

	ok, err = hasher.Verify("wrong", hashed)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if ok {
		t.Error("Verify() = true for wrong password, want: false")
	}
}

func TestArgon2Hasher_HashesDiffer(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("s3cr3t")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	second, err := hasher.Hash("s3cr3t")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if first == second {
		t.Error("Hash() produced identical hashes for the same input, salts should differ")
	}
}

func TestArgon2Hasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	if _, err := hasher.Verify("s3cr3t", "not-a-hash"); !errors.Is(err, hash.ErrInvalidHash) {
		t.Fatalf("Verify() error = %v, want: ErrInvalidHash", err)
	}
}
