package main

import (
	"fmt"
	"os"

	"github.com/teranos/declower/cmd/declower/commands"
	"github.com/teranos/declower/logger"
)

func main() {
	defer logger.Cleanup()
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
