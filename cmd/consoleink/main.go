// Command consoleink is the CLI entry point; it delegates entirely to the
// cobra command tree in the parent cmd package.
package main

import "github.com/stimpy77/ConsoleInk.NET/cmd"

func main() {
	cmd.Execute()
}
