// Command positive is a calculator for non-negative decimal numbers.
package main

import (
	"os"

	"github.com/govalues/positive/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
