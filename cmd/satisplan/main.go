package main

import (
	"github.com/andrescamacho/satisplan-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
