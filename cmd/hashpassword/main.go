// Command hashpassword prints a bcrypt hash for seeding the users table.
//
//	echo -n 'secret' | go run ./cmd/hashpassword
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/m04kA/SMC-StaffBooking/internal/service/auth"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil && password == "" {
		fmt.Fprintln(os.Stderr, "hashpassword: password expected on stdin")
		os.Exit(1)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		fmt.Fprintln(os.Stderr, "hashpassword: empty password")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpassword: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
