package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/MKhiriev/go-movie-browser/models"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewPasswordHasher()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 64 {
		t.Fatalf("salt length = %d, want 64 hex chars", len(s1))
	}
	if len(s2) != 64 {
		t.Fatalf("salt length = %d, want 64 hex chars", len(s2))
	}
	if s1 == s2 {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateSalt_IsHexEncoded(t *testing.T) {
	svc := NewPasswordHasher()

	salt, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	raw, err := hex.DecodeString(salt)
	if err != nil {
		t.Fatalf("salt is not valid hex: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("decoded salt length = %d bytes, want 32", len(raw))
	}
}

func TestHashWithSalt_DeterministicForSameInputs(t *testing.T) {
	svc := NewPasswordHasher()

	password := "correct horse battery staple"
	salt := strings.Repeat("ab", 32)

	c1 := svc.HashWithSalt(password, salt)
	c2 := svc.HashWithSalt(password, salt)

	if c1 != c2 {
		t.Fatalf("expected credentials to match for same password+salt")
	}
}

func TestHashWithSalt_DifferentSaltProducesDifferentDigest(t *testing.T) {
	svc := NewPasswordHasher()

	password := "same password"
	salt1 := strings.Repeat("01", 32)
	salt2 := strings.Repeat("02", 32)

	c1 := models.ParseCredential(svc.HashWithSalt(password, salt1))
	c2 := models.ParseCredential(svc.HashWithSalt(password, salt2))

	if c1.Digest == c2.Digest {
		t.Fatalf("expected different digests for different salts")
	}
}

func TestHashWithSalt_FormatAndOrder(t *testing.T) {
	svc := NewPasswordHasher()

	salt := strings.Repeat("cd", 32)
	got := svc.HashWithSalt("pass", salt)

	// Recompute the digest by hand: the salt is appended after the password.
	sum := sha256.Sum256([]byte("pass" + salt))
	want := salt + ":" + hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("HashWithSalt = %q, want %q", got, want)
	}
	if got != strings.ToLower(got) {
		t.Fatalf("expected lowercase hex, got %q", got)
	}
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	svc := NewPasswordHasher()

	c1, err := svc.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	c2, err := svc.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if c1 == c2 {
		t.Fatalf("expected different credentials for two hashes of the same password")
	}
	if models.ParseCredential(c1).Kind != models.CredentialSalted {
		t.Fatalf("expected salted credential, got %q", c1)
	}
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	svc := NewPasswordHasher()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		cred, err := svc.HashPassword("same password")
		if err != nil {
			t.Fatalf("HashPassword error: %v", err)
		}

		salt := models.ParseCredential(cred).Salt
		if _, dup := seen[salt]; dup {
			t.Fatalf("duplicate salt after %d hashes: %s", i, salt)
		}
		seen[salt] = struct{}{}
	}
}

func TestMatches_SaltedRoundTrip(t *testing.T) {
	svc := NewPasswordHasher()

	cred, err := svc.HashPassword("s3cr3t")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	parsed := models.ParseCredential(cred)

	if !svc.Matches("s3cr3t", parsed) {
		t.Fatalf("expected password to match its own credential")
	}
	if svc.Matches("wrong", parsed) {
		t.Fatalf("expected wrong password to not match")
	}
}

func TestMatches_PasswordWithColons(t *testing.T) {
	svc := NewPasswordHasher()

	cred, err := svc.HashPassword("pa:ss:word")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	parsed := models.ParseCredential(cred)

	if parsed.Kind != models.CredentialSalted {
		t.Fatalf("expected salted credential, got kind %s", parsed.Kind)
	}
	if !svc.Matches("pa:ss:word", parsed) {
		t.Fatalf("expected password with colons to round-trip")
	}
}

func TestMatches_LegacyDigest(t *testing.T) {
	svc := NewPasswordHasher()

	// SHA-256("secret") with no salt and no separator.
	legacy := models.ParseCredential("2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b")

	if legacy.Kind != models.CredentialLegacy {
		t.Fatalf("expected legacy credential, got kind %s", legacy.Kind)
	}
	if !svc.Matches("secret", legacy) {
		t.Fatalf("expected legacy digest to match its password")
	}
	if svc.Matches("not-secret", legacy) {
		t.Fatalf("expected wrong password to not match legacy digest")
	}
}

func TestMatches_MalformedCredential(t *testing.T) {
	svc := NewPasswordHasher()

	for _, raw := range []string{"", "garbage", ":", "deadbeef:", ":deadbeef"} {
		if svc.Matches("anything", models.ParseCredential(raw)) {
			t.Fatalf("expected malformed credential %q to never match", raw)
		}
	}
}
