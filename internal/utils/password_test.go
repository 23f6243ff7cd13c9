// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("monstera42")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "monstera42" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash prefix, got %q", hash)
	}

	ok, err := CheckPassword(hash, "monstera42")
	if err != nil || !ok {
		t.Errorf("expected (true, nil), got (%v, %v)", ok, err)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("monstera42")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	ok, err := CheckPassword(hash, "pothos42")
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Error("expected mismatch")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Error("expected error for malformed hash")
	}
	if ok {
		t.Error("expected ok=false for malformed hash")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, _ := HashPassword("same-password")
	second, _ := HashPassword("same-password")
	if first == second {
		t.Error("expected different hashes for the same password")
	}
}
