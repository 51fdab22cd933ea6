// Command probablynote builds scales, exports Scala files and simulates the
// note selector from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "probablynote:", err)
		os.Exit(1)
	}
}
