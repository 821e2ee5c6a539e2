package main

import (
	"github.com/julien-sobczak/the-noteformatter/cmd"
)

func main() {
	cmd.Execute()
}
