package main

import (
	"os"

	"github.com/markusproject/markusapi/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
