package main

import (
	"os"

	"github.com/vipcxj/inrange/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
