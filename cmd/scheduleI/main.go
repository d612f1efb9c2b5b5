package main

import (
	"github.com/DrakeCaesar/scheduleI/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
