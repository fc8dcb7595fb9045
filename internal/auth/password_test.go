package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong password", hash) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	a, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken error: %v", err)
	}
	b, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken error: %v", err)
	}
	if a == b {
		t.Fatal("two random tokens collided")
	}
	if len(a) == 0 {
		t.Fatal("empty token")
	}
}
