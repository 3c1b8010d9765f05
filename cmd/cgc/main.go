// Command cgc runs the CGC multicut optimizer over an edge-list graph file.
package main

import "github.com/hmaarrfk/nifty/cmd/cgc/cmd"

func main() {
	cmd.Execute()
}
