package main

import (
	"fmt"
	"os"

	"github.com/asante/codeweave/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
