package main

import "github.com/louisbranch/roman/internal/cli"

func main() {
	cli.Execute()
}
