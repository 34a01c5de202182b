package main

import "github.com/Johannes-Berggren/commitgoblin/cmd"

func main() {
	cmd.Execute()
}
