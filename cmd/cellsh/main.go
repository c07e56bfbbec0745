package main

import (
	"fmt"
	"os"

	"github.com/kalexmills/cellgraph/cmd/cellsh/repl"
)

func main() {
	if err := repl.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
