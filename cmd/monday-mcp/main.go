package main

import "github.com/compozy/monday-mcp/cmd/monday-mcp/commands"

func main() {
	commands.Execute()
}
