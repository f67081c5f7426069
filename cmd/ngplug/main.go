// Package main is the entry point for the ngplug CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ngplug/cli/internal/cmd"
	oerrors "github.com/ngplug/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// already reported by the command
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitGeneralError)
	}
}
