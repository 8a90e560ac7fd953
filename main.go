package main

import "langconv/internal/cli"

func main() {
	cli.Execute()
}
