// Command itksn decodes, re-encodes and checks ITk serial numbers.
//
//	itksn parse 20UPGFW2123456
//	itksn parse -o json 20UPICP1299999
//	itksn encode 20UPGMC2291234
//	itksn components --area PI
//	itksn check serials.yaml
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(Main(os.Args[1:]))
}

// Main runs the command line and returns the process exit code.
func Main(args []string) int { return mainTo(os.Stderr, args) }

func mainTo(stderr io.Writer, args []string) int {
	cmd := newRootCmd()
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "itksn: %v\n", err)
		return 1
	}
	return 0
}
