package main

import (
	"github.com/chests-genuine/web3-construct-stability/pkg/cli"
)

func main() {
	cli.Execute()
}
