// Command genkey generates a fresh Ed25519 key pair and writes it to disk as
// a MessagePack-encoded key bundle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/FirasAleem/curve25519/encoding"
	"github.com/FirasAleem/curve25519/signature"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	out := flag.String("out", "key.bundle", "path to write the generated key bundle to")
	flag.Parse()

	s := signature.Ed25519.New()
	s.GenerateKey()

	bundle := &encoding.KeyBundle{
		Algorithm:  signature.Ed25519,
		PrivateKey: s.GetPrivateKey(),
		PublicKey:  s.GetPublicKey(),
	}

	encoded, err := bundle.Marshal()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*out, encoded, 0o600); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("wrote key bundle to %s\n", *out)
	fmt.Printf("public key: %x\n", bundle.PublicKey)
}
