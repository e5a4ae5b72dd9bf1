package main

import (
	"fmt"
	"os"

	"github.com/quickpage/tldr/cmd/tldr"
)

func main() {
	rootCmd := tldr.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tldr.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
