package main

import (
	"github.com/andrescamacho/stellar-homestead/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
