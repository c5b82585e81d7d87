package main

import (
	"github.com/NVIDIA/recipe-finder/pkg/cli"
)

func main() {
	cli.Execute()
}
