package main

import (
	cmd "github.com/rohmanhakim/parks-explorer/internal/cli"
)

func main() {
	cmd.Execute()
}
