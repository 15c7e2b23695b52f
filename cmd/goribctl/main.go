// goribctl is the command-line client of the goribd daemon.
package main

import "github.com/dantte-lp/goribd/cmd/goribctl/commands"

func main() {
	commands.Execute()
}
