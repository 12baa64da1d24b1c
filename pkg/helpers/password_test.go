package helpers

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret-pass" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CompareHashAndPassword(hash, "secret-pass") {
		t.Fatal("correct password should verify")
	}
	if CompareHashAndPassword(hash, "wrong-pass") {
		t.Fatal("wrong password should not verify")
	}
}

func TestBcryptHasherImplementsVerify(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{}
	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify("pw123456", digest) {
		t.Fatal("verify should succeed for the original password")
	}
	if h.Verify("pw1234567", digest) {
		t.Fatal("verify should fail for a different password")
	}
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("same-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password should differ")
	}
}
