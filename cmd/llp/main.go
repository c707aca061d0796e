package main

import "github.com/katalvlaran/llp/cmd/llp/cmd"

func main() {
	cmd.Execute()
}
