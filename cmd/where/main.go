package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/grindlemire/go-where/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// commands report their own failures, usage errors from cobra still need printing
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
