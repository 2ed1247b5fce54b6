// Command verify checks an Ed25519 signature against a key bundle produced by genkey.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/FirasAleem/curve25519/encoding"
	"github.com/FirasAleem/curve25519/signature"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	keyPath := flag.String("key", "", "path to a key bundle produced by genkey")
	message := flag.String("message", "", "message that was signed")
	sigHex := flag.String("signature", "", "signature in hex, as printed by sign")
	flag.Parse()

	if *keyPath == "" || *sigHex == "" {
		fmt.Fprintln(os.Stderr, "Error: -key and -signature are required")
		flag.Usage()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*keyPath)
	if err != nil {
		log.Fatal(err)
	}

	bundle, err := encoding.UnmarshalKeyBundle(raw)
	if err != nil {
		log.Fatal(err)
	}

	sig, err := hex.DecodeString(*sigHex)
	if err != nil {
		log.Fatal(err)
	}

	ok := signature.Identifier(bundle.Algorithm).Verify(bundle.PublicKey, []byte(*message), sig)
	if !ok {
		fmt.Println("invalid")
		os.Exit(1)
	}

	fmt.Println("valid")
}
