package main

import (
	"os"

	"github.com/modu-ai/themeport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
