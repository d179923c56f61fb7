package main

import "github.com/bradford-hamilton/chip8go/cmd"

func main() {
	cmd.Execute()
}
