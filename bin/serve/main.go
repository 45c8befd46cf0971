package main

import (
	"fmt"
	"os"

	"hotel-site/cmd"
)

// Standalone server entry point for hosts that start the binary without arguments
func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(append([]string{"serve"}, os.Args[1:]...))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
