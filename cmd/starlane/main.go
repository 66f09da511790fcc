package main

import (
	"github.com/andrescamacho/starlane-logistics/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
