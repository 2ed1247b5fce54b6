// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve25519 is an educational, from-scratch implementation of the
// two cryptographic protocols built on Curve25519: X25519 Diffie-Hellman key
// agreement (RFC 7748) over the curve's Montgomery form, and Ed25519
// signatures (RFC 8032) over its twisted Edwards form.
//
// The field, scalar, and curve arithmetic live under internal/ and are not
// meant to be imported directly; x25519 and ed25519 expose the protocol-level
// APIs, hash holds the shared SHA-512 primitive, and signature and
// encoding provide a uniform facade and a persistence format for generated
// key material. cmd/ holds command-line drivers built on top of these
// packages.
package curve25519
