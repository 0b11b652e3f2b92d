package main

import (
	"fmt"
	"os"

	"github.com/rcops/mkmodule/cmd/mkmodule"
	"github.com/rcops/mkmodule/pkg/style"
)

func main() {
	rootCmd := mkmodule.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		mkmodule.LogFailure(err)
		fmt.Fprintln(os.Stderr, style.Render(os.Stderr, "Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
