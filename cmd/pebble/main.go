// Command pebble runs pebble scripts.
package main

import (
	"fmt"
	"os"

	"github.com/pebble-lang/pebble/cmd/pebble/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
