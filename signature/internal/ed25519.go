// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds different signature mechanisms.
package internal

import (
	"fmt"

	"github.com/FirasAleem/curve25519/ed25519"
)

// Ed25519 implements the Signature interface on top of this module's own
// from-scratch ed25519 package, rather than crypto/ed25519.
type Ed25519 struct {
	seed []byte
	pk   []byte
}

// NewEd25519 returns an empty Ed25519 structure.
func NewEd25519() *Ed25519 {
	return &Ed25519{}
}

// SetPrivateKey loads the given private key and sets the public key accordingly.
func (ed *Ed25519) SetPrivateKey(privateKey []byte) {
	if len(privateKey) != ed25519.SeedSize {
		panic("Ed25519 invalid private key size")
	}

	ed.seed = append([]byte(nil), privateKey...)

	pk, err := ed25519.GeneratePublicKey(ed.seed)
	if err != nil {
		panic(fmt.Errorf("unexpected error deriving public key: %w", err))
	}

	ed.pk = pk
}

// GenerateKey generates a fresh private/public key pair and stores it in ed.
func (ed *Ed25519) GenerateKey() {
	ed.SetPrivateKey(ed25519.GeneratePrivateKey())
}

// GetPrivateKey returns the private key seed.
func (ed *Ed25519) GetPrivateKey() []byte {
	return ed.seed
}

// GetPublicKey returns the public key.
func (ed *Ed25519) GetPublicKey() []byte {
	return ed.pk
}

// SignMessage uses the private key in ed to sign the input. The input doesn't need to be hashed beforehand.
func (ed *Ed25519) SignMessage(message ...[]byte) []byte {
	sig, err := ed25519.Sign(ed.seed, joinMessage(message))
	if err != nil {
		panic(fmt.Errorf("unexpected error signing message: %w", err))
	}

	return sig
}

// joinMessage concatenates the parts of a variadic message into the single
// byte slice ed25519.Sign expects, pre-sizing the buffer from the parts'
// combined length.
func joinMessage(parts [][]byte) []byte {
	if len(parts) == 1 {
		return parts[0]
	}

	size := 0
	for _, p := range parts {
		size += len(p)
	}

	buf := make([]byte, 0, size)
	for _, p := range parts {
		buf = append(buf, p...)
	}

	return buf
}

// Verify checks whether signature of the message is valid given the public key.
func (ed *Ed25519) Verify(publicKey, message, signature []byte) bool {
	return ed25519.Verify(publicKey, message, signature)
}
