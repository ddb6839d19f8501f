// Command hash_secret generates the bcrypt hash of an API client
// secret for the API_CLIENT_SECRET_HASH environment variable.
//
// Usage:
//
//	go run cmd/tools/hash_secret/main.go <secret>
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-match/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash_secret <secret>")
		os.Exit(1)
	}

	hash, err := config.HashClientSecret(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
