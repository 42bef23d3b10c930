// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"bytes"
	"encoding/hex"
)

// Identity is the value the host attributes to an executing program or to a
// record's owning authority. Identities are compared byte for byte.
type Identity []byte

func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id, other)
}

func (id Identity) String() string {
	return hex.EncodeToString(id)
}

func (id Identity) KeyForMap() string {
	return string(id)
}

// RecordAddress uniquely identifies a record in the host's ledger.
type RecordAddress []byte

func (a RecordAddress) Equal(other RecordAddress) bool {
	return bytes.Equal(a, other)
}

func (a RecordAddress) String() string {
	return hex.EncodeToString(a)
}

func (a RecordAddress) KeyForMap() string {
	return string(a)
}

type Ed25519PublicKey []byte

func (k Ed25519PublicKey) Equal(other Ed25519PublicKey) bool {
	return bytes.Equal(k, other)
}

func (k Ed25519PublicKey) String() string {
	return hex.EncodeToString(k)
}

type Ed25519PrivateKey []byte

func (k Ed25519PrivateKey) String() string {
	return hex.EncodeToString(k)
}
