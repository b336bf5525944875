package authutil_test

import (
	"strings"
	"testing"

	"github.com/academicpro/academicpro/internal/app/system/authutil"
)

func TestHashPassword(t *testing.T) {
	hash, err := authutil.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// bcrypt hashes start with $2a$ or $2b$
	if !strings.HasPrefix(hash, "$2") {
		t.Error("expected bcrypt hash to start with $2")
	}
	if hash == "correct horse battery staple" {
		t.Error("hash must not equal the raw password")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := authutil.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := authutil.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// bcrypt uses random salt, so hashes should be different
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := authutil.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !authutil.CheckPassword(hash, "hunter22") {
		t.Error("expected matching password to verify")
	}
	if authutil.CheckPassword(hash, "hunter23") {
		t.Error("expected non-matching password to fail")
	}
	if authutil.CheckPassword("", "hunter22") {
		t.Error("expected empty hash to fail")
	}
}
