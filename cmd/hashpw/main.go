// Command hashpw reads an admin password from stdin and prints the bcrypt hash
// to put in ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/auth"
)

func main() {
	hash, err := hashFrom(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}

func hashFrom(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if err := auth.ValidatePasswordStrength(password); err != nil {
		return "", err
	}
	return auth.HashPassword(password)
}
