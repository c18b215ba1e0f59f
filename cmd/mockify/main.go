package main

import "github.com/mcoot/mockify/internal/cli"

func main() {
	cli.Execute()
}
