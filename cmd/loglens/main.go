package main

import (
	"os"

	"github.com/loglens/loglens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
