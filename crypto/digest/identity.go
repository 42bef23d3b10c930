// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/hostvm/counter-program-go/crypto/hash"
	"github.com/hostvm/counter-program-go/crypto/keys"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/pkg/errors"
)

const (
	IDENTITY_SIZE_BYTES    = 20
	IDENTITY_SHA256_OFFSET = hash.SHA256_HASH_SIZE_BYTES - IDENTITY_SIZE_BYTES
)

// CalcProgramIdentity derives the identity a program executes under from its
// registered name.
func CalcProgramIdentity(programName string) (primitives.Identity, error) {
	if len(programName) == 0 {
		return nil, errors.New("program name is missing for identity derivation")
	}
	return primitives.Identity(hash.CalcSha256([]byte(programName))[IDENTITY_SHA256_OFFSET:]), nil
}

// CalcIdentityOfEd25519PublicKey derives the identity of an external owner
// from their ed25519 public key.
func CalcIdentityOfEd25519PublicKey(publicKey primitives.Ed25519PublicKey) (primitives.Identity, error) {
	if len(publicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.Errorf("public key has invalid length %d for identity derivation", len(publicKey))
	}
	return primitives.Identity(hash.CalcSha256(publicKey)[IDENTITY_SHA256_OFFSET:]), nil
}

// CalcRecordAddress derives a deterministic record address from an owner
// identity and a caller-chosen seed.
func CalcRecordAddress(owner primitives.Identity, seed []byte) primitives.RecordAddress {
	return primitives.RecordAddress(hash.CalcSha256(owner, seed))
}
