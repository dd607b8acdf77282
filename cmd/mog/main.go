// Command mog is a command-line front end for the MOG engine: codeword
// membership and decoding, octad and sextet completion, permutation cycles and
// partial-labelling completion.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
