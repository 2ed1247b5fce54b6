// Command dh demonstrates an X25519 Diffie-Hellman exchange between two
// freshly generated key pairs, printing the private keys, public keys, and
// the shared secret both sides arrive at.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/FirasAleem/curve25519/x25519"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	mode := flag.String("mode", "ladder", "scalar multiplication strategy: ladder or double-and-add")
	flag.Parse()

	var m x25519.Mode

	switch *mode {
	case "ladder":
		m = x25519.Ladder
	case "double-and-add":
		m = x25519.DoubleAndAdd
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	alicePriv := x25519.GeneratePrivateKey()
	bobPriv := x25519.GeneratePrivateKey()

	base := make([]byte, x25519.Size)
	base[0] = 9

	alicePub, err := m.ScalarMultiply(alicePriv, base)
	if err != nil {
		log.Fatal(err)
	}

	bobPub, err := m.ScalarMultiply(bobPriv, base)
	if err != nil {
		log.Fatal(err)
	}

	aliceShared, err := m.ScalarMultiply(alicePriv, bobPub)
	if err != nil {
		log.Fatal(err)
	}

	bobShared, err := m.ScalarMultiply(bobPriv, alicePub)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("alice private: %x\n", alicePriv)
	fmt.Printf("alice public:  %x\n", alicePub)
	fmt.Printf("bob private:   %x\n", bobPriv)
	fmt.Printf("bob public:    %x\n", bobPub)
	fmt.Printf("alice shared:  %x\n", aliceShared)
	fmt.Printf("bob shared:    %x\n", bobShared)

	if string(aliceShared) != string(bobShared) {
		log.Fatal("shared secrets do not match")
	}
}
