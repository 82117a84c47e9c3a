package main

import "github.com/loom-sh/loom/cmd"

func main() {
	cmd.Execute()
}
