package main

import (
	"github.com/tutils/rando/cmd"
)

func main() {
	cmd.Execute()
}
