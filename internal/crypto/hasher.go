// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/MKhiriev/go-movie-browser/models"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// saltLen is the salt size in bytes. Stored in the struct so it can be
	// raised later without touching call sites.
	saltLen int
}

// NewPasswordHasher constructs a [PasswordHasher] with a 32-byte (256-bit)
// salt, which doubles to 64 characters once hex-encoded.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		saltLen: 32, // 256 bits
	}
}

// GenerateSalt implements [PasswordHasher]. It reads saltLen random bytes
// from the OS CSPRNG and returns them hex-encoded, so the stored credential
// stays printable and contains no ':' outside the separator. Returns an
// error if the random read fails.
func (p *passwordHasher) GenerateSalt() (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// HashWithSalt implements [PasswordHasher]. It computes
// SHA-256(password ‖ salt) and returns the full stored form "salt:digest"
// with the digest in lowercase hex.
func (p *passwordHasher) HashWithSalt(password string, salt string) string {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write([]byte(salt)) // salt goes after the password bytes

	return salt + ":" + hex.EncodeToString(h.Sum(nil))
}

// HashPassword implements [PasswordHasher]. It generates a fresh salt and
// hashes the password with it. Returns an error only if salt generation
// fails.
func (p *passwordHasher) HashPassword(password string) (string, error) {
	salt, err := p.GenerateSalt()
	if err != nil {
		return "", err
	}

	return p.HashWithSalt(password, salt), nil
}

// Matches implements [PasswordHasher]. For salted credentials the full
// stored form is recomputed from the candidate password and the stored
// salt, then compared as strings. Legacy bare digests are compared against
// SHA-256(password) alone. The comparison is exact, so digests stored in
// uppercase hex never match.
func (p *passwordHasher) Matches(password string, credential models.Credential) bool {
	switch credential.Kind {
	case models.CredentialSalted:
		return p.HashWithSalt(password, credential.Salt) == credential.String()
	case models.CredentialLegacy:
		sum := sha256.Sum256([]byte(password))
		return hex.EncodeToString(sum[:]) == credential.Digest
	default:
		return false
	}
}
