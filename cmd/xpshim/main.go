package main

import (
	"os"

	"github.com/soyeahso/xpshim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("xpshim: " + err.Error() + "\n")
		os.Exit(1)
	}
}
