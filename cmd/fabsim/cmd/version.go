package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the fabsim version and build time.",
		Usage: "fabsim version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	_, err := fmt.Fprintf(stdout, "fabsim version %s (built %s)\n", Version, BuildTime)
	return err
}
