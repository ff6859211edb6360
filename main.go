package main

import (
	"github.com/databacker/db-tools/cmd"
)

func main() {
	cmd.Execute()
}
