package jwt_test

import (
	"testing"
	"time"

	"comanda/internal/config"
	"comanda/internal/platform/jwt"
)

const testKey = "test-signing-key"

func newTestSigner() jwt.Signer {
	cfg := &config.JWT{
		JTILength: 16,
		Issuer:    "comanda",
	}
	return jwt.NewGolangJWTSigner(cfg, testKey)
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()

	token, err := signer.Sign("staff-1", []string{"comanda"}, time.Minute)
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}

	if got, want := claims.StaffID, "staff-1"; got != want {
		t.Errorf("claims.StaffID = %q, want: %q", got, want)
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()

	token, err := signer.Sign("staff-1", []string{"comanda"}, -time.Minute)
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Fatal("Verify() expected error for expired token, got nil")
	}
}

func TestGolangJWTSigner_VerifyTampered(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()

	token, err := signer.Sign("staff-1", []string{"comanda"}, time.Minute)
	if err != nil {
		t.Fatalf("Sign() unexpected error: %v", err)
	}

	if _, err := signer.Verify(token + "x"); err == nil {
		t.Fatal("Verify() expected error for tampered token, got nil")
	}
}
