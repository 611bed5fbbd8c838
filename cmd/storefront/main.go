package main

import (
	"os"

	"github.com/grovetools/storefront/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
