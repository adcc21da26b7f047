// Command quoteweb shows random quotes in the terminal.
package main

import "github.com/diogo/quoteweb/internal/commands"

func main() {
	commands.Execute()
}
