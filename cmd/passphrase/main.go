// Command passphrase prints the bcrypt hash to put in OWNER_PASSPHRASE_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "passphrase: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	passphrase := strings.TrimRight(line, "\r\n")
	if passphrase == "" {
		return fmt.Errorf("passphrase must not be empty")
	}

	hash, err := services.HashPassphrase(passphrase)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
