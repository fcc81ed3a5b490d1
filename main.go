package main

import (
	"fmt"
	"os"

	"github.com/abhisek/termcommander/cmd"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "An error occurred. Exiting Terminal Commander.")
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			code = 1
		}
	}()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
