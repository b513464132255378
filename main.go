package main

import "aiforge/cmd"

func main() {
	cmd.Execute()
}
