package auth

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" {
		t.Fatalf("expected non-empty hash")
	}
	if hash == "p@ssw0rd" {
		t.Fatalf("hash must not equal the plaintext password")
	}
	if !VerifyPassword("p@ssw0rd", hash) {
		t.Fatalf("expected verify ok")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("expected verify fail")
	}
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected verify fail for malformed hash")
	}
}
