package main

import "github.com/aalvaropc/draw/internal/cli"

func main() {
	cli.Execute()
}
