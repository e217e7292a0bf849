package main

import "github.com/milden6/prefixindex/internal/cli"

func main() {
	cli.Execute()
}
