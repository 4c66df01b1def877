// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// CredentialKind discriminates the two on-disk formats a stored credential
// can take. The kind is decided once, by [ParseCredential], and consumed
// uniformly by the verification path.
type CredentialKind int

const (
	// CredentialSalted is the current format: a random hex salt and a hex
	// digest of password+salt, joined by a single ':'.
	CredentialSalted CredentialKind = iota

	// CredentialLegacy is the historical format: a bare hex digest of the
	// password alone, with no salt and no separator.
	CredentialLegacy
)

// String returns a short label for the credential kind, used in logs.
func (k CredentialKind) String() string {
	switch k {
	case CredentialSalted:
		return "salted"
	case CredentialLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Credential is the parsed form of a stored credential string.
type Credential struct {
	// Kind tells which format the stored value was in.
	Kind CredentialKind

	// Salt is the hex-encoded salt. Empty for CredentialLegacy.
	Salt string

	// Digest is the hex-encoded hash value.
	Digest string
}

// ParseCredential splits a raw stored credential into its tagged form.
// The split happens on the first ':' only, so digests are never broken up
// even if the salt half were to contain further separators. A value with no
// ':' at all is a legacy bare digest.
//
// ParseCredential never fails: malformed input simply yields a credential
// that will not match anything during verification.
func ParseCredential(raw string) Credential {
	if salt, digest, found := strings.Cut(raw, ":"); found {
		return Credential{Kind: CredentialSalted, Salt: salt, Digest: digest}
	}

	return Credential{Kind: CredentialLegacy, Digest: raw}
}

// String reassembles the credential into its stored representation.
func (c Credential) String() string {
	if c.Kind == CredentialSalted {
		return c.Salt + ":" + c.Digest
	}

	return c.Digest
}
