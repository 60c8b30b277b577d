package main

import (
	"fmt"
	"os"

	"github.com/RobertLuptonTheGood/eups/cmd/eups"
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
)

func main() {
	rootCmd := eups.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "eups: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
