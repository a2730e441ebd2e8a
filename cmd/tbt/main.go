package main

import (
	"github.com/hml69/thanbaitet/internal/cli"
)

func main() {
	cli.Execute()
}
