package main

import (
	"os"

	"github.com/thenoetrevino/boardview/cmd"
	"github.com/thenoetrevino/boardview/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
