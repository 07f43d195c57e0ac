package main

import (
	"os"

	"studio/internal/cli"
)

func main() { os.Exit(cli.Main()) }
