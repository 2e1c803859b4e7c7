package main

import (
	"fmt"
	"os"

	"github.com/webern/midi/internal/commands/midistatus"
)

// Version is set at build time.
var Version = "0.1.0"

func main() {
	midistatus.Version = Version

	if err := midistatus.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
