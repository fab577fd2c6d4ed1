// Command pocketcube is the CLI entry point for the pocket cube solver.
package main

import "github.com/jeffmartin/pocketcube/internal/cli"

func main() {
	cli.Execute()
}
