package lib

import (
	"fmt"
	"os"
)

// Exit prints the error and exits the program with code 1
func Exit(err error) {
	ExitStatus(err, 1)
}

// ExitStatus prints the error and exits the program with the given status.
func ExitStatus(err error, status int) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(status)
}
