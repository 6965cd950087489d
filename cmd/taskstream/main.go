package main

import (
	"github.com/felixgeelhaar/taskstream/adapter/cli"
)

func main() {
	cli.Execute()
}
