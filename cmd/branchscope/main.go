// main holds the entry logic for the branchscope CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/branchscope/cmd"
	"github.com/huangsam/branchscope/internal/contract"
)

// main runs the root command and maps failures to exit codes.
func main() {
	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		fmt.Fprintf(os.Stderr, "Error stopping profiling: %v\n", profErr)
	}

	if err != nil {
		if errors.Is(err, contract.ErrNotRepository) {
			fmt.Fprintln(os.Stderr, "Error: Not a git repository")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
