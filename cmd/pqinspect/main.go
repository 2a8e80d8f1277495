// pqinspect summarizes Parquet files as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/xtxerr/pqinspect/internal/errors"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pqinspect:", err)
		os.Exit(errors.ExitCode(err))
	}
}
