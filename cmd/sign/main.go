// Command sign signs a message with a key bundle produced by genkey.
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

	keyPath := flag.String("key", "", "path to a key bundle produced by genkey")
	message := flag.String("message", "", "message to sign")
	flag.Parse()

	if *keyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -key is required")
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

	sig := signature.Identifier(bundle.Algorithm).Sign(bundle.PrivateKey, []byte(*message))

	fmt.Printf("%x\n", sig)
}
