// Command scaffold generates entity files from annotated templates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cpcf/scaffold/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
