package main

import (
	"os"

	"github.com/unkn0wn-root/hexpp/internal/cli"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.NewRuntime(version, commit, date)))
}
