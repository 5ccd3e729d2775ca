package main

import (
	"github.com/logannye/rosalind/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
