// Command ctl is the CTL language CLI: parse, evaluate, and tokenize CTL
// source from a file, inline string, or stdin.
package main

import (
	"os"

	"github.com/m-ou-se/configtaal/cmd/ctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
