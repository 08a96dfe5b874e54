package main

import (
	"os"

	"github.com/thenoetrevino/obra/internal/ci"
)

func main() {
	runner := ci.NewRunner()
	exitCode := runner.Run()
	os.Exit(exitCode)
}
