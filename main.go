package main

import "github.com/itsmostafa/bookindex/cmd"

func main() {
	cmd.Execute()
}
