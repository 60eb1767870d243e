package main

import "github.com/diogo/ollamaterm/internal/commands"

func main() {
	commands.Execute()
}
