// Command gpart partitions weighted communication graphs and maps processes
// onto physical nodes.
package main

import "github.com/mpiprof/gpart/internal/cli"

func main() {
	cli.Execute()
}
