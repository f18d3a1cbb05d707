// Command lvtour finds short closed tours through complete weighted graphs.
//
//	lvtour gen --kind euclidean --n 1000 --seed 1 --out TSP_1000_euclidianDistance.txt
//	lvtour solve TSP_1000_euclidianDistance.txt TSP_1000_randomDistance.txt
//	lvtour eval TSP_1000_euclidianDistance.txt solution_TSP_1000_euclidianDistance.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/go-ansi"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, ansi.NewAnsiStderr()))
}

// run executes the command tree and maps any error to exitFailure.
// progress receives the interactive progress bars.
func run(args []string, stdout, stderr, progress io.Writer) int {
	root := newRootCmd(&app{stdout: stdout, stderr: stderr, progress: progress})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "lvtour: %v\n", err)
		return exitFailure
	}

	return exitOK
}
