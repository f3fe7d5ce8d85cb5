package main

import (
	"github.com/lumenray/lumen/cmd"
)

func main() {
	cmd.Execute()
}
