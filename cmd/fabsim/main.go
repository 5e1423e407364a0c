// Command fabsim replays and previews floating action button sessions
// without a device.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/fab/cmd/fabsim/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
